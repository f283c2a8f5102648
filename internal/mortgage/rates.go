// Package mortgage serves the static rate sheet and FAQ content for
// the mortgage marketing page. There is no calculator behind it.
package mortgage

import "homenest/server/internal/models"

// Rates returns the current rate sheet in display order.
func Rates() []models.MortgageRate {
	return []models.MortgageRate{
		{
			Title:    "30-Year Fixed",
			Tag:      "Most popular",
			Rate:     "6.125%",
			APR:      "6.263%",
			Points:   "1.448 ($3,982.00)",
			Features: []string{"3% min down payment", "Lower payments due to longer term"},
		},
		{
			Title:    "30-Year FHA",
			Tag:      "Lower credit profiles",
			Rate:     "5.875%",
			APR:      "6.546%",
			Points:   "1.577 ($4,336.75)",
			Features: []string{"3.5% min down payment", "Looser credit/debt requirements"},
		},
		{
			Title:    "30-Year VA",
			Tag:      "Eligible military",
			Rate:     "6.000%",
			APR:      "6.299%",
			Points:   "1.889 ($5,194.75)",
			Features: []string{"0% down payment", "No private mortgage insurance"},
		},
		{
			Title:    "20-Year Fixed",
			Tag:      "Save on interest",
			Rate:     "6.125%",
			APR:      "6.367%",
			Points:   "1.912 ($5,258.00)",
			Features: []string{"5% min down payment", "Pay less interest due to shorter term"},
		},
		{
			Title:    "15-Year Fixed",
			Tag:      "Faster payoff",
			Rate:     "5.375%",
			APR:      "5.682%",
			Points:   "1.975 ($5,431.25)",
			Features: []string{"5% min down payment", "Pay less interest due to shorter term"},
		},
	}
}

// FAQs returns the mortgage page FAQ entries.
func FAQs() []models.MortgageFAQ {
	return []models.MortgageFAQ{
		{
			Question: "What is HomeNest Home Loans?",
			Answer: "HomeNest Home Loans is a mortgage lender dedicated to helping you move from dreaming to " +
				"financing with a variety of mortgage options, step-by-step guidance from top-rated loan officers " +
				"and rich affordability tools integrated into the HomeNest experience.",
		},
		{
			Question: "How do I purchase a home with HomeNest Home Loans?",
			Answer: "You can start by getting pre-approved online in as little as 3 minutes. Once pre-approved, " +
				"you'll be matched with a loan officer who will guide you through the home buying process.",
		},
		{
			Question: "What rates can I expect?",
			Answer: "Mortgage rates aren't one size fits all. We can give you an estimate based on your unique " +
				"details, including your credit profile, down payment and the home you have in mind.",
		},
	}
}
