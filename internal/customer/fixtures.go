package customer

import "loan-assistant/internal/models"

// DemoProfiles are the registered customers available without a database.
func DemoProfiles() []models.CustomerProfile {
	return []models.CustomerProfile{
		{
			CustomerID:       "CUST001",
			Name:             "Rahul Sharma",
			Age:              32,
			City:             "Mumbai",
			Mobile:           "9876543210",
			Email:            "rahul.sharma@email.com",
			PAN:              "ABCDE1234F",
			MonthlySalary:    75000,
			JobTitle:         "Software Engineer",
			Company:          "TCS Limited",
			ExperienceYears:  8,
			EmploymentType:   "Salaried",
			CreditScore:      750,
			PreApprovedLimit: 400000,
			TotalExistingEMI: 15000,
			ExistingLoans: []models.ExistingLoan{
				{LoanType: "Home Loan", Bank: "HDFC", EMI: 15000},
			},
		},
		{
			CustomerID:       "CUST002",
			Name:             "Priya Patel",
			Age:              28,
			City:             "Pune",
			Mobile:           "9876543211",
			Email:            "priya.patel@email.com",
			PAN:              "BCDEF2345G",
			MonthlySalary:    55000,
			JobTitle:         "Marketing Manager",
			Company:          "Wipro Limited",
			ExperienceYears:  5,
			EmploymentType:   "Salaried",
			CreditScore:      720,
			PreApprovedLimit: 275000,
			TotalExistingEMI: 12000,
			ExistingLoans: []models.ExistingLoan{
				{LoanType: "Car Loan", Bank: "Axis", EMI: 12000},
			},
		},
		{
			CustomerID:       "CUST003",
			Name:             "Amit Kumar",
			Age:              35,
			City:             "Delhi",
			Mobile:           "9876543212",
			Email:            "amit.kumar@email.com",
			PAN:              "CDEFG3456H",
			MonthlySalary:    95000,
			JobTitle:         "Senior Consultant",
			Company:          "Deloitte India",
			ExperienceYears:  12,
			EmploymentType:   "Salaried",
			CreditScore:      780,
			PreApprovedLimit: 500000,
			TotalExistingEMI: 0,
		},
		{
			CustomerID:       "CUST004",
			Name:             "Sneha Reddy",
			Age:              26,
			City:             "Bangalore",
			Mobile:           "9876543213",
			Email:            "sneha.reddy@email.com",
			PAN:              "DEFGH4567I",
			MonthlySalary:    42000,
			JobTitle:         "Business Analyst",
			Company:          "Accenture",
			ExperienceYears:  3,
			EmploymentType:   "Salaried",
			CreditScore:      680,
			PreApprovedLimit: 150000,
			TotalExistingEMI: 8500,
			ExistingLoans: []models.ExistingLoan{
				{LoanType: "Personal Loan", Bank: "Kotak", EMI: 8500},
			},
		},
		{
			CustomerID:       "CUST005",
			Name:             "Rajesh Gupta",
			Age:              40,
			City:             "Chennai",
			Mobile:           "9876543214",
			Email:            "rajesh.gupta@email.com",
			PAN:              "EFGHI5678J",
			MonthlySalary:    125000,
			JobTitle:         "General Manager",
			Company:          "L&T Infotech",
			ExperienceYears:  16,
			EmploymentType:   "Salaried",
			CreditScore:      800,
			PreApprovedLimit: 750000,
			TotalExistingEMI: 43000,
			ExistingLoans: []models.ExistingLoan{
				{LoanType: "Home Loan", Bank: "SBI", EMI: 25000},
				{LoanType: "Car Loan", Bank: "HDFC", EMI: 18000},
			},
		},
	}
}
