package models

import (
	"errors"
	"fmt"
	"time"
)

type Doctor struct {
	ID                      string   `bson:"id" json:"id"`
	Name                    string   `bson:"name" json:"name"`
	NameLocalized           string   `bson:"name_bengali" json:"name_bengali"`
	Specialization          string   `bson:"specialization" json:"specialization"`
	SpecializationLocalized string   `bson:"specialization_bengali" json:"specialization_bengali"`
	Qualifications          string   `bson:"qualifications" json:"qualifications"`
	ExperienceYears         int      `bson:"experience_years" json:"experience_years"`
	ConsultationFee         float64  `bson:"consultation_fee" json:"consultation_fee"`
	AvailableDays           []string `bson:"available_days" json:"available_days"`
	ConsultationHours       string   `bson:"consultation_hours" json:"consultation_hours"` // e.g. "9:00 AM - 5:00 PM"
	ImageURL                *string  `bson:"image_url" json:"image_url"`                   // nil is stored as null
	CreatedAt               string   `bson:"created_at" json:"created_at"`                 // ISO 8601, see FormatTimestamp
}

var weekdays = map[string]bool{}

func init() {
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdays[d.String()] = true
	}
}

// Validate checks the invariants every stored doctor profile must satisfy.
func (d *Doctor) Validate() error {
	if d.Name == "" {
		return errors.New("doctor name is required")
	}
	if d.ExperienceYears < 0 {
		return fmt.Errorf("%s: experience_years must not be negative", d.Name)
	}
	if d.ConsultationFee < 0 {
		return fmt.Errorf("%s: consultation_fee must not be negative", d.Name)
	}
	for _, day := range d.AvailableDays {
		if !weekdays[day] {
			return fmt.Errorf("%s: %q is not a weekday name", d.Name, day)
		}
	}
	return nil
}
