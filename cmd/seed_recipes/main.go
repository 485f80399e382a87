package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/database"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/modifier"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/models"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/service"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/types"
)

type seedRecipe struct {
	Title       string
	Description string
	Category    string
	Ingredients []modifier.Ingredient
	Steps       []string
	Servings    int
	PrepTime    int
	Calories    float64
	Protein     float64
	Fat         float64
	Carbs       float64
	Fiber       float64
	Salt        float64
}

var catalogue = []seedRecipe{
	{
		Title:       "Grilled Chicken Salad",
		Description: "Lean grilled chicken over mixed greens with a light vinaigrette",
		Category:    "salad",
		Ingredients: []modifier.Ingredient{
			{Name: "chicken breast", Amount: 200, Unit: "g"},
			{Name: "mixed greens", Amount: 100, Unit: "g"},
			{Name: "olive oil", Amount: 15, Unit: "ml"},
			{Name: "lemon juice", Amount: 10, Unit: "ml"},
		},
		Steps:    []string{"Season and grill the chicken.", "Toss greens with oil and lemon.", "Slice chicken and serve on top."},
		Servings: 2,
		PrepTime: 25,
		Calories: 320, Protein: 38, Fat: 14, Carbs: 8, Fiber: 3, Salt: 0.9,
	},
	{
		Title:       "Vegetable Lentil Soup",
		Description: "Hearty lentil soup with carrots, celery and tomatoes",
		Category:    "soup",
		Ingredients: []modifier.Ingredient{
			{Name: "red lentils", Amount: 150, Unit: "g"},
			{Name: "carrot", Amount: 2, Unit: "pcs"},
			{Name: "celery stalk", Amount: 2, Unit: "pcs"},
			{Name: "canned tomatoes", Amount: 400, Unit: "g"},
		},
		Steps:    []string{"Sauté the vegetables.", "Add lentils, tomatoes and stock.", "Simmer for 25 minutes and season."},
		Servings: 4,
		PrepTime: 40,
		Calories: 260, Protein: 14, Fat: 4, Carbs: 42, Fiber: 9, Salt: 1.1,
	},
	{
		Title:       "Oatmeal with Berries",
		Description: "Creamy oatmeal topped with fresh berries and honey",
		Category:    "breakfast",
		Ingredients: []modifier.Ingredient{
			{Name: "rolled oats", Amount: 80, Unit: "g"},
			{Name: "milk", Amount: 250, Unit: "ml"},
			{Name: "mixed berries", Amount: 100, Unit: "g"},
			{Name: "honey", Amount: 10, Unit: "g"},
		},
		Steps:    []string{"Simmer oats in milk until creamy.", "Top with berries and honey."},
		Servings: 1,
		PrepTime: 10,
		Calories: 450, Protein: 16, Fat: 9, Carbs: 74, Fiber: 8, Salt: 0.3,
	},
	{
		Title:       "Baked Salmon with Quinoa",
		Description: "Oven-baked salmon fillet with fluffy quinoa and steamed broccoli",
		Category:    "dinner",
		Ingredients: []modifier.Ingredient{
			{Name: "salmon fillet", Amount: 180, Unit: "g"},
			{Name: "quinoa", Amount: 80, Unit: "g"},
			{Name: "broccoli", Amount: 150, Unit: "g"},
			{Name: "butter", Amount: 10, Unit: "g"},
		},
		Steps:    []string{"Bake the salmon at 200C for 15 minutes.", "Cook quinoa and steam broccoli.", "Plate with a knob of butter."},
		Servings: 2,
		PrepTime: 30,
		Calories: 520, Protein: 34, Fat: 22, Carbs: 44, Fiber: 6, Salt: 0.8,
	},
	{
		Title:       "Chickpea Curry",
		Description: "Mild coconut chickpea curry with spinach over rice",
		Category:    "dinner",
		Ingredients: []modifier.Ingredient{
			{Name: "chickpeas", Amount: 400, Unit: "g"},
			{Name: "coconut milk", Amount: 200, Unit: "ml"},
			{Name: "spinach", Amount: 100, Unit: "g"},
			{Name: "basmati rice", Amount: 150, Unit: "g"},
		},
		Steps:    []string{"Fry spices, add chickpeas and coconut milk.", "Simmer, fold in spinach.", "Serve over cooked rice."},
		Servings: 3,
		PrepTime: 35,
		Calories: 480, Protein: 15, Fat: 18, Carbs: 64, Fiber: 11, Salt: 1.2,
	},
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("seed-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         "Seed User",
		Email:        fmt.Sprintf("seed_%d@example.com", time.Now().Unix()),
		PasswordHash: string(passwordHash),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create seed user: %v", err)
	}

	recipeService := service.NewRecipeService(db, service.NewEmbeddingService())
	ctx := context.Background()

	for _, r := range catalogue {
		steps := make([]modifier.Step, len(r.Steps))
		for i, s := range r.Steps {
			steps[i] = modifier.Step{Number: i + 1, Instruction: s}
		}

		prepTime := r.PrepTime
		req := &types.CreateRecipeRequest{
			Title:           r.Title,
			Description:     r.Description,
			Category:        r.Category,
			Ingredients:     r.Ingredients,
			Steps:           steps,
			Servings:        r.Servings,
			PrepTimeMinutes: &prepTime,
			IsPublic:        true,
			Calories:        r.Calories,
			Protein:         r.Protein,
			Fat:             r.Fat,
			Carbs:           r.Carbs,
			Fiber:           r.Fiber,
			Salt:            r.Salt,
		}

		recipe, err := recipeService.CreateRecipe(ctx, user.ID, req)
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", r.Title, err)
		}
		log.Printf("Seeded recipe %q (%s)", recipe.Title, recipe.ID)
	}

	log.Printf("Seeded %d recipes for user %s", len(catalogue), user.Email)
}
