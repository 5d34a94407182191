package services

import "github.com/Eswar-Mukku/food-intake-tracker/models"

func opt(v float64) *float64 { return &v }

// foodCatalog is the built-in reference data. Values are per the base serving
// (ServingSize + ServingUnit); micros left nil are unknown for that food, not
// zero.
var foodCatalog = []models.FoodItem{
	// Grains
	{Code: "b1", Name: "White Bread", Category: "Grains", Calories: 265, Protein: 9, Carbs: 49, Fat: 3, Fiber: 2.7, ServingSize: 100, ServingUnit: "g", Sodium: opt(490), Potassium: opt(100), Calcium: opt(100), Iron: opt(3)},
	{Code: "b2", Name: "Whole Wheat Bread", Category: "Grains", Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, Fiber: 7, ServingSize: 100, ServingUnit: "g", Sodium: opt(450), Potassium: opt(250), Calcium: opt(60), Iron: opt(3.5)},
	{Code: "b5", Name: "Pav (Indian Bread Roll)", Category: "Grains", Calories: 280, Protein: 8, Carbs: 55, Fat: 3, Fiber: 2, ServingSize: 1, ServingUnit: "piece", Sodium: opt(300), Potassium: opt(90), Calcium: opt(50), Iron: opt(2)},
	{Code: "b7", Name: "Oats (Rolled, Dry)", Category: "Grains", Calories: 389, Protein: 16.9, Carbs: 66, Fat: 6.9, Fiber: 10.6, ServingSize: 100, ServingUnit: "g", Sodium: opt(2), Potassium: opt(429), Calcium: opt(54), Iron: opt(4.7)},
	{Code: "gr1", Name: "White Rice (Cooked)", Category: "Grains", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, ServingSize: 100, ServingUnit: "g", Sodium: opt(1), Potassium: opt(35), Calcium: opt(10), Iron: opt(0.2)},
	{Code: "gr4", Name: "Roti (Phulka, Whole Wheat)", Category: "Grains", Calories: 85, Protein: 3, Carbs: 18, Fat: 0.5, Fiber: 3, ServingSize: 1, ServingUnit: "piece", Sodium: opt(5), Potassium: opt(80), Calcium: opt(15), Iron: opt(1)},
	{Code: "gr6", Name: "Naan (Plain)", Category: "Grains", Calories: 260, Protein: 9, Carbs: 45, Fat: 5, Fiber: 2, ServingSize: 1, ServingUnit: "piece", Sodium: opt(350), Potassium: opt(120), Calcium: opt(40), Iron: opt(2)},

	// Protein
	{Code: "p1", Name: "Egg (Large, Whole)", Category: "Protein", Calories: 72, Protein: 6.3, Carbs: 0.4, Fat: 4.8, ServingSize: 1, ServingUnit: "piece", SaturatedFat: opt(1.6), Cholesterol: opt(186), Sodium: opt(71), Potassium: opt(69), Calcium: opt(28), Iron: opt(1), VitaminA: opt(80)},
	{Code: "p3", Name: "Chicken Breast (Cooked, Skinless)", Category: "Protein", Calories: 165, Protein: 31, Fat: 3.6, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(1), Cholesterol: opt(85), Sodium: opt(74), Potassium: opt(256), Calcium: opt(15), Iron: opt(1), VitaminA: opt(5)},
	{Code: "p6", Name: "Fish (Salmon, Cooked)", Category: "Protein", Calories: 208, Protein: 22, Fat: 13, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(3), Cholesterol: opt(55), Sodium: opt(60), Potassium: opt(363), Calcium: opt(10), Iron: opt(0.5), VitaminA: opt(50)},
	{Code: "p8", Name: "Paneer (Indian Cottage Cheese)", Category: "Protein", Calories: 295, Protein: 19, Carbs: 3, Fat: 23, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(14), Cholesterol: opt(60), Sodium: opt(20), Potassium: opt(120), Calcium: opt(400), VitaminA: opt(180)},
	{Code: "p9", Name: "Tofu (Firm)", Category: "Protein", Calories: 144, Protein: 16, Carbs: 4, Fat: 8, Fiber: 2, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(1), Cholesterol: opt(0), Sodium: opt(15), Potassium: opt(120), Calcium: opt(350), Iron: opt(5.4)},
	{Code: "p10", Name: "Whey Protein Isolate", Category: "Protein", Calories: 120, Protein: 25, Carbs: 2, Fat: 1, ServingSize: 30, ServingUnit: "g", SaturatedFat: opt(0.5), Cholesterol: opt(5), Sodium: opt(50), Potassium: opt(150), Calcium: opt(100), Iron: opt(0.5)},

	// Indian breakfast and mains
	{Code: "ib1", Name: "Idli (Medium)", Category: "Indian Breakfast", Calories: 39, Protein: 1, Carbs: 8, Fat: 0.1, Fiber: 0.5, ServingSize: 1, ServingUnit: "piece", Sodium: opt(5), Potassium: opt(30), Calcium: opt(5), Iron: opt(0.5)},
	{Code: "ib3", Name: "Masala Dosa", Category: "Indian Breakfast", Calories: 250, Protein: 5, Carbs: 36, Fat: 9, Fiber: 2.5, ServingSize: 1, ServingUnit: "piece", SaturatedFat: opt(3), Sodium: opt(220), Potassium: opt(150), Calcium: opt(30), Iron: opt(2), VitaminA: opt(20), VitaminC: opt(5)},
	{Code: "ib7", Name: "Aloo Paratha", Category: "Indian Breakfast", Calories: 280, Protein: 6, Carbs: 42, Fat: 10, Fiber: 4, ServingSize: 1, ServingUnit: "piece", Sodium: opt(320), Potassium: opt(250), Calcium: opt(40), Iron: opt(3), VitaminA: opt(10), VitaminC: opt(8)},
	{Code: "im1", Name: "Dal Tadka", Category: "Indian Main", Calories: 120, Protein: 7, Carbs: 18, Fat: 3, Fiber: 6, ServingSize: 100, ServingUnit: "g", Sodium: opt(320), Potassium: opt(280), Calcium: opt(30), Iron: opt(2.5), VitaminA: opt(20), VitaminC: opt(5)},
	{Code: "im7", Name: "Butter Chicken", Category: "Indian Main", Calories: 220, Protein: 16, Carbs: 6, Fat: 14, Fiber: 1, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(7), Sodium: opt(450), Potassium: opt(250), Calcium: opt(30), Iron: opt(1.5), VitaminA: opt(100), VitaminC: opt(5)},
	{Code: "im11", Name: "Chicken Biryani", Category: "Indian Main", Calories: 400, Protein: 22, Carbs: 50, Fat: 12, Fiber: 2, ServingSize: 1, ServingUnit: "plate", SaturatedFat: opt(3), Cholesterol: opt(70), Sodium: opt(550), Potassium: opt(320), Iron: opt(2), Calcium: opt(40), VitaminA: opt(30), VitaminC: opt(5)},
	{Code: "im12", Name: "Veg Biryani", Category: "Indian Main", Calories: 320, Protein: 8, Carbs: 55, Fat: 8, Fiber: 5, ServingSize: 1, ServingUnit: "plate", SaturatedFat: opt(2), Cholesterol: opt(5), Sodium: opt(450), Potassium: opt(350), Iron: opt(2.5), Calcium: opt(60), VitaminA: opt(150), VitaminC: opt(25)},

	// Snacks and fast food
	{Code: "sf1", Name: "Samosa (Medium)", Category: "Snacks", Calories: 260, Protein: 5, Carbs: 30, Fat: 12, Fiber: 2, ServingSize: 1, ServingUnit: "piece", SaturatedFat: opt(4), Sodium: opt(400), Potassium: opt(180), Calcium: opt(30), Iron: opt(2), VitaminA: opt(50), VitaminC: opt(4)},
	{Code: "sf8", Name: "Pizza (Margherita Slice)", Category: "Fast Food", Calories: 250, Protein: 10, Carbs: 30, Fat: 10, Fiber: 2, ServingSize: 1, ServingUnit: "slice", SaturatedFat: opt(4), Sodium: opt(550), Potassium: opt(150), Calcium: opt(150), Iron: opt(2), VitaminA: opt(100), VitaminC: opt(5)},
	{Code: "sf9", Name: "Burger (Chicken)", Category: "Fast Food", Calories: 450, Protein: 25, Carbs: 38, Fat: 22, Fiber: 3, ServingSize: 1, ServingUnit: "piece", SaturatedFat: opt(8), Sodium: opt(850), Potassium: opt(350), Calcium: opt(80), Iron: opt(3), VitaminA: opt(50), VitaminC: opt(5)},
	{Code: "sf10", Name: "French Fries (Large)", Category: "Fast Food", Calories: 450, Protein: 5, Carbs: 60, Fat: 22, Fiber: 6, ServingSize: 1, ServingUnit: "serving", SaturatedFat: opt(4), Sodium: opt(350), Potassium: opt(800), Calcium: opt(20), Iron: opt(1.5), VitaminC: opt(15)},
	{Code: "ns1", Name: "Almonds", Category: "Snacks", Calories: 579, Protein: 21, Carbs: 22, Fat: 50, Fiber: 12.5, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(3.8), Sodium: opt(1), Potassium: opt(733), Calcium: opt(269), Iron: opt(3.7)},

	// Beverages and dairy
	{Code: "bv2", Name: "Coca Cola (Can)", Category: "Beverages", Calories: 139, Carbs: 35, ServingSize: 330, ServingUnit: "ml", Sodium: opt(35), Potassium: opt(5), Calcium: opt(5)},
	{Code: "bv12", Name: "Coconut Water", Category: "Beverages", Calories: 46, Protein: 1.7, Carbs: 9, Fat: 0.5, Fiber: 2.6, ServingSize: 250, ServingUnit: "ml", Sodium: opt(250), Potassium: opt(600), Calcium: opt(60), Iron: opt(0.7), VitaminC: opt(5.8)},
	{Code: "d1", Name: "Milk (Cow, Whole)", Category: "Dairy", Calories: 60, Protein: 3.2, Carbs: 4.8, Fat: 3.2, ServingSize: 100, ServingUnit: "ml", SaturatedFat: opt(1.9), Calcium: opt(120), Sodium: opt(50), Potassium: opt(150), Iron: opt(0.03), VitaminA: opt(46)},
	{Code: "d3", Name: "Curd/Yogurt (Whole Milk)", Category: "Dairy", Calories: 61, Protein: 3.5, Carbs: 4.7, Fat: 3.3, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(2.1), Calcium: opt(121), Sodium: opt(46), Potassium: opt(155), Iron: opt(0.05), VitaminA: opt(27), VitaminC: opt(0.5)},
	{Code: "d5", Name: "Ghee", Category: "Dairy", Calories: 900, Fat: 100, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(60), Calcium: opt(0), Sodium: opt(0), Potassium: opt(0), Iron: opt(0), VitaminA: opt(900)},

	// Fruits and vegetables
	{Code: "f1", Name: "Apple (with skin)", Category: "Fruits", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, ServingSize: 100, ServingUnit: "g", VitaminC: opt(4.6), Potassium: opt(107), Calcium: opt(6), Iron: opt(0.12), Sodium: opt(1), VitaminA: opt(3)},
	{Code: "f2", Name: "Banana", Category: "Fruits", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, ServingSize: 100, ServingUnit: "g", SaturatedFat: opt(0.1), Potassium: opt(358), VitaminC: opt(8.7), Calcium: opt(5), Iron: opt(0.26), Sodium: opt(1), VitaminA: opt(3)},
	{Code: "f3", Name: "Mango (Ripe)", Category: "Fruits", Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.4, Fiber: 1.6, ServingSize: 100, ServingUnit: "g", VitaminA: opt(54), VitaminC: opt(36.4), Potassium: opt(168), Calcium: opt(11), Iron: opt(0.16), Sodium: opt(1)},
	{Code: "v2", Name: "Spinach (Raw)", Category: "Vegetables", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, ServingSize: 100, ServingUnit: "g", Iron: opt(2.7), VitaminA: opt(469), VitaminC: opt(28), Potassium: opt(558), Calcium: opt(99), Sodium: opt(79)},
	{Code: "v3", Name: "Potato (Boiled)", Category: "Vegetables", Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, Fiber: 2, ServingSize: 100, ServingUnit: "g", Potassium: opt(421), VitaminC: opt(19), Calcium: opt(12), Iron: opt(0.8), Sodium: opt(6)},
	{Code: "v7", Name: "Carrot (Raw)", Category: "Vegetables", Calories: 41, Protein: 0.9, Carbs: 10, Fat: 0.2, Fiber: 2.8, ServingSize: 100, ServingUnit: "g", VitaminC: opt(5.9), VitaminA: opt(835), Potassium: opt(320), Calcium: opt(33), Iron: opt(0.3), Sodium: opt(69)},
}

// FoodCategories mirrors the catalog's category filter list.
var FoodCategories = []string{
	"All", "Grains", "Protein", "Indian Breakfast", "Indian Main",
	"Dairy", "Fruits", "Vegetables", "Snacks", "Fast Food",
	"Beverages", "Spices", "Ingredients",
}
