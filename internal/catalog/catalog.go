// Package catalog holds the static task and shop definitions consumed by the
// CLI and TUI. The engine only ever sees a task's ID and EXP reward.
package catalog

// Task is one eco-friendly task kind.
type Task struct {
	ID          int
	Title       string
	Description string
	EXP         float64
	Category    string
	Tips        []string
}

// ShopItem is one purchasable pet item.
type ShopItem struct {
	ID          int
	Name        string
	Description string
	Price       int
}

// PlantHatID is the shop item whose purchase also collects a hat.
const PlantHatID = 4

var tasks = []Task{
	{
		ID:          1,
		Title:       "Pick Up Litter",
		Description: "Collect and properly dispose of 5 pieces of litter",
		EXP:         20,
		Category:    "Waste Reduction",
		Tips: []string{
			"Always wear gloves when picking up litter",
			"Separate recyclables from trash",
			"Dispose of items in proper bins",
			"Encourage others to do the same!",
		},
	},
	{
		ID:          2,
		Title:       "Save Water",
		Description: "Take a shorter shower (5 minutes or less)",
		EXP:         20,
		Category:    "Water Conservation",
		Tips: []string{
			"Turn off water while soaping",
			"Use a timer to track shower time",
			"Fix any leaks in your home",
			"Collect rainwater for plants",
		},
	},
	{
		ID:          3,
		Title:       "Recycle Properly",
		Description: "Sort and recycle 3 items correctly",
		EXP:         40,
		Category:    "Waste Reduction",
		Tips: []string{
			"Rinse containers before recycling",
			"Check local recycling guidelines",
			"Remove labels when possible",
			"Separate different materials",
		},
	},
	{
		ID:          4,
		Title:       "Use Reusable Bag",
		Description: "Use a reusable bag instead of plastic",
		EXP:         20,
		Category:    "Waste Reduction",
		Tips: []string{
			"Keep reusable bags in your car",
			"Use cloth bags for groceries",
			"Say no to plastic bags",
			"Wash reusable bags regularly",
		},
	},
	{
		ID:          5,
		Title:       "Walk or Bike",
		Description: "Walk or bike instead of driving for short trips",
		EXP:         40,
		Category:    "Transportation",
		Tips: []string{
			"Plan your route ahead",
			"Use bike lanes when available",
			"Combine multiple errands",
			"Enjoy the exercise!",
		},
	},
	{
		ID:          6,
		Title:       "Turn Off Lights",
		Description: "Turn off lights when leaving a room",
		EXP:         20,
		Category:    "Energy Conservation",
		Tips: []string{
			"Use natural light when possible",
			"Install LED bulbs",
			"Use timers for outdoor lights",
			"Unplug unused electronics",
		},
	},
	{
		ID:          7,
		Title:       "Plant a Tree",
		Description: "Plant a tree or care for existing plants",
		EXP:         60,
		Category:    "Nature",
		Tips: []string{
			"Choose native species",
			"Water regularly",
			"Plant in appropriate season",
			"Research proper care",
		},
	},
	{
		ID:          8,
		Title:       "Meatless Meal",
		Description: "Have a vegetarian or vegan meal",
		EXP:         40,
		Category:    "Food",
		Tips: []string{
			"Try plant-based proteins",
			"Explore new recipes",
			"Reduce meat consumption gradually",
			"Support local produce",
		},
	},
}

var shopItems = []ShopItem{
	{ID: 1, Name: "Eco Food", Description: "Healthy food that boosts your pet's growth.", Price: 50},
	{ID: 2, Name: "Toy Ball", Description: "Keeps your pet happy and playful!", Price: 75},
	{ID: 3, Name: "Water Bottle", Description: "Essential hydration for your eco pet.", Price: 30},
	{ID: PlantHatID, Name: "Plant Hat", Description: "A stylish hat made from recycled materials.", Price: 120},
}

// Tasks returns the task catalog.
func Tasks() []Task {
	return tasks
}

// TaskByID returns the task with the given ID, or nil.
func TaskByID(id int) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// ShopItems returns the shop catalog.
func ShopItems() []ShopItem {
	return shopItems
}

// ShopItemByID returns the shop item with the given ID, or nil.
func ShopItemByID(id int) *ShopItem {
	for i := range shopItems {
		if shopItems[i].ID == id {
			return &shopItems[i]
		}
	}
	return nil
}
