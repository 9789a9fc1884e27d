package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ReminderKind is a closed set; doctor kinds carry their frequency suffix.
type ReminderKind string

const (
	KindMealBreakfast ReminderKind = "meal_breakfast"
	KindMealLunch     ReminderKind = "meal_lunch"
	KindMealDinner    ReminderKind = "meal_dinner"
	KindWater         ReminderKind = "water"

	doctorKindPrefix = "doctor_"
)

// IsTimeBased reports whether the kind fires on a daily HH:MM match
// (meal and water rules). Doctor kinds are date-based.
func (k ReminderKind) IsTimeBased() bool {
	switch k {
	case KindMealBreakfast, KindMealLunch, KindMealDinner, KindWater:
		return true
	}
	return false
}

func (k ReminderKind) IsDoctor() bool {
	return strings.HasPrefix(string(k), doctorKindPrefix)
}

func DoctorKind(freq CheckupFrequency) ReminderKind {
	return ReminderKind(doctorKindPrefix + string(freq))
}

// DoctorKindPrefix is used for bulk-delete of all doctor rules of a user.
const DoctorKindPrefix = doctorKindPrefix

// CheckupFrequency is the period between doctor checkups.
type CheckupFrequency string

const (
	Weekly    CheckupFrequency = "weekly"
	Monthly   CheckupFrequency = "monthly"
	Quarterly CheckupFrequency = "quarterly"
	Yearly    CheckupFrequency = "yearly"
)

// Period returns the fixed day-count offset for the frequency.
func (f CheckupFrequency) Period() (time.Duration, bool) {
	switch f {
	case Weekly:
		return 7 * 24 * time.Hour, true
	case Monthly:
		return 30 * 24 * time.Hour, true
	case Quarterly:
		return 90 * 24 * time.Hour, true
	case Yearly:
		return 365 * 24 * time.Hour, true
	}
	return 0, false
}

func (f CheckupFrequency) Text() string {
	if f == Quarterly {
		return "every 3 months"
	}
	return string(f)
}

// ActiveReminder is one standing reminder rule of a user.
type ActiveReminder struct {
	gorm.Model
	UserID      uint         `gorm:"index;not null"`
	Kind        ReminderKind `gorm:"size:32;not null"`
	TriggerTime string       `gorm:"size:5"` // HH:MM
	Message     string       `gorm:"type:text"`
	PushTitle   string
	PushBody    string
	ActionData  string `gorm:"type:text"` // JSON
	IsActive    bool   `gorm:"default:true"`
}

// DoctorAppointment holds the computed next checkup for a (user, doctor-type)
// pair. Re-registering a last-visit date replaces the prior record.
type DoctorAppointment struct {
	gorm.Model
	UserID           uint             `gorm:"index;not null"`
	AppointmentDate  string           `gorm:"size:10"` // next checkup, YYYY-MM-DD
	AppointmentTime  string           `gorm:"size:5"`  // HH:MM
	DoctorType       string           `gorm:"size:64"`
	Frequency        CheckupFrequency `gorm:"size:16"`
	LastVisitDate    string           `gorm:"size:10"`
	NextReminderDate string           `gorm:"size:10;index"` // checkup - 1 day
	IsActive         bool             `gorm:"default:true"`
}
