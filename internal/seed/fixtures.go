package seed

import "github.com/harentsoaR/hospital-seed/internal/models"

// Demo credentials printed at the end of every run.
const (
	AdminUsername   = "admin"
	AdminPassword   = "admin123"
	PatientUsername = "patient"
	PatientPassword = "patient123"
)

type userFixture struct {
	user     models.User
	password string
}

func adminFixture() userFixture {
	return userFixture{
		user: models.User{
			Username:           AdminUsername,
			FullName:           "Admin User",
			Phone:              "01700000000",
			Email:              "admin@hospital.com",
			Role:               models.RoleAdmin,
			LanguagePreference: "en",
		},
		password: AdminPassword,
	}
}

func patientFixture() userFixture {
	return userFixture{
		user: models.User{
			Username:           PatientUsername,
			FullName:           "John Doe",
			Phone:              "01711111111",
			Email:              "patient@example.com",
			Role:               models.RolePatient,
			LanguagePreference: "en",
		},
		password: PatientPassword,
	}
}

// doctorFixtures returns the demo roster without ids or timestamps.
func doctorFixtures() []models.Doctor {
	return []models.Doctor{
		{
			Name:                    "Dr. Sarah Ahmed",
			NameLocalized:           "ডাঃ সারাহ আহমেদ",
			Specialization:          "Cardiologist",
			SpecializationLocalized: "হৃদরোগ বিশেষজ্ঞ",
			Qualifications:          "MBBS, MD (Cardiology)",
			ExperienceYears:         15,
			ConsultationFee:         1500,
			AvailableDays:           []string{"Monday", "Tuesday", "Wednesday", "Thursday"},
			ConsultationHours:       "9:00 AM - 5:00 PM",
		},
		{
			Name:                    "Dr. Kamal Hassan",
			NameLocalized:           "ডাঃ কামাল হাসান",
			Specialization:          "Neurologist",
			SpecializationLocalized: "স্নায়ু বিশেষজ্ঞ",
			Qualifications:          "MBBS, MD (Neurology)",
			ExperienceYears:         12,
			ConsultationFee:         1200,
			AvailableDays:           []string{"Sunday", "Monday", "Wednesday", "Friday"},
			ConsultationHours:       "10:00 AM - 6:00 PM",
		},
		{
			Name:                    "Dr. Fatima Khan",
			NameLocalized:           "ডাঃ ফাতিমা খান",
			Specialization:          "Pediatrician",
			SpecializationLocalized: "শিশু বিশেষজ্ঞ",
			Qualifications:          "MBBS, DCH, MD (Pediatrics)",
			ExperienceYears:         10,
			ConsultationFee:         1000,
			AvailableDays:           []string{"Saturday", "Sunday", "Tuesday", "Thursday"},
			ConsultationHours:       "9:00 AM - 4:00 PM",
		},
		{
			Name:                    "Dr. Rajesh Kumar",
			NameLocalized:           "ডাঃ রাজেশ কুমার",
			Specialization:          "Orthopedic Surgeon",
			SpecializationLocalized: "অর্থোপেডিক সার্জন",
			Qualifications:          "MBBS, MS (Orthopedics)",
			ExperienceYears:         18,
			ConsultationFee:         1800,
			AvailableDays:           []string{"Monday", "Tuesday", "Thursday", "Saturday"},
			ConsultationHours:       "8:00 AM - 3:00 PM",
		},
		{
			Name:                    "Dr. Nazia Rahman",
			NameLocalized:           "ডাঃ নাজিয়া রহমান",
			Specialization:          "Dermatologist",
			SpecializationLocalized: "চর্মরোগ বিশেষজ্ঞ",
			Qualifications:          "MBBS, DDV, MD (Dermatology)",
			ExperienceYears:         8,
			ConsultationFee:         900,
			AvailableDays:           []string{"Sunday", "Monday", "Tuesday", "Wednesday"},
			ConsultationHours:       "11:00 AM - 7:00 PM",
		},
	}
}
