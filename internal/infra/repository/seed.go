package repository

import (
	"time"

	"pslab/internal/domain/model"
)

// ストアが空のときに使う既定データ。

func DefaultBloodTests() []model.CatalogItem {
	return []model.CatalogItem{
		{
			ID:          1,
			Kind:        model.ItemKindTest,
			Name:        "Complete Blood Count",
			Description: "A complete blood count (CBC) is a blood test used to evaluate your overall health and detect a wide range of disorders, including anemia, infection and leukemia.",
			Price:       599,
			Published:   true,
			Parameters: []string{
				"Red Blood Cell Count",
				"White Blood Cell Count",
				"Platelet Count",
				"Hemoglobin",
				"Hematocrit",
				"Mean Corpuscular Volume",
			},
			Preparation:    []string{"Fasting for 8-12 hours may be required"},
			TurnaroundTime: "24 hours",
		},
		{
			ID:          2,
			Kind:        model.ItemKindTest,
			Name:        "Lipid Profile",
			Description: "Measures cholesterol and triglycerides to assess the risk of cardiovascular disease.",
			Price:       799,
			Published:   true,
			Parameters: []string{
				"Total Cholesterol",
				"HDL Cholesterol",
				"LDL Cholesterol",
				"Triglycerides",
			},
			Preparation:    []string{"Fasting for 9-12 hours is required"},
			TurnaroundTime: "24 hours",
		},
		{
			ID:          3,
			Kind:        model.ItemKindTest,
			Name:        "Thyroid Profile",
			Description: "Evaluates thyroid gland function through TSH, T3 and T4 levels.",
			Price:       699,
			Published:   true,
			Parameters:  []string{"TSH", "Total T3", "Total T4"},
			Preparation: []string{"No special preparation required"},

			TurnaroundTime: "24-48 hours",
		},
	}
}

func DefaultHealthPackages() []model.CatalogItem {
	return []model.CatalogItem{
		{
			ID:          1,
			Kind:        model.ItemKindPackage,
			Name:        "Basic Health Package",
			Description: "Essential health checkup including blood tests, urine analysis, and basic vital checks.",
			Price:       1999,
			Image:       "/images/packages/basic-health.jpg",
			Tests:       []string{"Complete Blood Count", "Urine Analysis", "Blood Pressure", "BMI Check"},
			Category:    "basic",
			AgeGroup:    "18+ years",
			Gender:      "all",
			Duration:    "2-3 hours",
		},
		{
			ID:          2,
			Kind:        model.ItemKindPackage,
			Name:        "Comprehensive Health Package",
			Description: "Complete health assessment with advanced diagnostics and specialist consultation.",
			Price:       4999,
			Image:       "/images/packages/comprehensive-health.jpg",
			Tests:       []string{"Full Body Check", "Cardiac Assessment", "Diabetes Screening", "Thyroid Profile"},
			Category:    "comprehensive",
			AgeGroup:    "All ages",
			Gender:      "all",
			Duration:    "4-5 hours",
		},
	}
}

func DefaultDoctors() []model.Doctor {
	return []model.Doctor{
		{
			ID:               "1",
			Name:             "Dr. John Smith",
			Specialty:        "Cardiologist",
			Qualification:    "MD, DM Cardiology",
			Experience:       "15 years",
			About:            "Experienced cardiologist specializing in heart diseases and preventive care.",
			AvailabilityDays: []string{"Monday", "Wednesday", "Friday"},
			AvailabilityTime: "9:00 AM - 5:00 PM",
			ConsultationFee:  1000,
			Image:            "/doctors/doctor1.jpg",
		},
		{
			ID:               "2",
			Name:             "Dr. Sarah Johnson",
			Specialty:        "Pediatrician",
			Qualification:    "MD Pediatrics",
			Experience:       "10 years",
			About:            "Dedicated pediatrician with expertise in child healthcare and development.",
			AvailabilityDays: []string{"Tuesday", "Thursday", "Saturday"},
			AvailabilityTime: "10:00 AM - 6:00 PM",
			ConsultationFee:  800,
			Image:            "/doctors/doctor2.jpg",
		},
	}
}

func DefaultBlogs() []model.Blog {
	return []model.Blog{
		{
			ID:          "1",
			Title:       "Understanding Blood Tests: A Complete Guide",
			Content:     "Blood tests are an essential diagnostic tool that helps doctors evaluate how well your organs are working and identify various diseases...",
			Category:    "Health Tips",
			ImageURL:    "https://images.unsplash.com/photo-1579154204601-01588f351e67",
			Author:      "Dr. Sarah Johnson",
			PublishDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Summary:     "Learn about different types of blood tests and what they can tell you about your health.",
			Tags:        []string{"Blood Tests", "Health", "Diagnostics"},
			Status:      model.BlogStatusPublished,
		},
	}
}
