package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"ecobuddy/internal/storage"
)

// SpendCoins atomically checks and decrements the balance. On insufficient
// coins the balance is unchanged and ErrInsufficientCoins is returned.
func (s *Service) SpendCoins(ctx context.Context, amount int) error {
	if amount <= 0 {
		return ValidationError{Field: "amount", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile.Coins < amount {
		return ErrInsufficientCoins
	}
	s.profile.Coins -= amount
	s.persist(ctx)
	return nil
}

// AddCoins increments the balance with no precondition on it.
func (s *Service) AddCoins(ctx context.Context, amount int) error {
	if amount <= 0 {
		return ValidationError{Field: "amount", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Coins += amount
	s.persist(ctx)
	return nil
}

// AddHat increments the collected-hats counter. Called by the shop flow
// after a successful Plant Hat purchase.
func (s *Service) AddHat(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.HatsCollected++
	s.persist(ctx)
	return nil
}

// Purchase spends coins for a shop item and records the purchase. Any
// item-specific side effect (like AddHat) is the caller's responsibility.
func (s *Service) Purchase(ctx context.Context, itemID int, name string, price int) error {
	if price <= 0 {
		return ValidationError{Field: "price", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile.Coins < price {
		return ErrInsufficientCoins
	}
	s.profile.Coins -= price
	s.persist(ctx)

	if _, err := s.purchases.Insert(ctx, itemID, name, price, s.now()); err != nil {
		s.log.Warn("record purchase", zap.Error(err))
	}
	return nil
}

// RenamePet sets the pet name. Names are trimmed and must be 1–20 runes.
func (s *Service) RenamePet(ctx context.Context, newName string) error {
	name := strings.TrimSpace(newName)
	if name == "" {
		return ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(name) > MaxPetNameLen {
		return ValidationError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", MaxPetNameLen)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Name = name
	s.persist(ctx)
	return nil
}

// ResetAll restores every profile field to its documented default, clears the
// history tables, and persists immediately. Settings survive the reset.
func (s *Service) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	*s.profile = *storage.DefaultProfile(s.profile.Key)
	s.deriveLocked()

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, q := range []string{`DELETE FROM activity`, `DELETE FROM purchases`} {
			if _, err := tx.ExecContext(ctx, q); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.log.Warn("reset history", zap.Error(err))
	}

	s.persist(ctx)
	return nil
}
