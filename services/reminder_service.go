package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/models"
	"github.com/Bharathihub/AI-powered-diet-planner/utils"

	"gorm.io/gorm"
)

// ErrInvalidFrequency rejects checkup frequencies outside the closed set.
var ErrInvalidFrequency = errors.New("invalid checkup frequency")

// FiredReminder is the payload handed to the notification side once a rule
// triggers. The engine never marks rules as fired; evaluating the same tick
// twice fires twice (at-least-once, by contract).
type FiredReminder struct {
	Type        models.ReminderKind `json:"type"`
	Time        string              `json:"time"`
	Message     string              `json:"message"`
	PushTitle   string              `json:"push_title"`
	PushBody    string              `json:"push_body"`
	ActionData  map[string]any      `json:"action_data"`
	Timestamp   string              `json:"timestamp"`
	TriggeredBy string              `json:"triggered_by"`
}

type ReminderService struct {
	db   *gorm.DB
	push *PushService
	hub  *RealtimeHub
}

func NewReminderService(db *gorm.DB, push *PushService, hub *RealtimeHub) *ReminderService {
	return &ReminderService{db: db, push: push, hub: hub}
}

// EvaluateReminders is the pure trigger engine: given the active rule set,
// the registered doctor appointments and the current (date, time), it
// returns the subset that must fire now. force bypasses the time match
// (manual "trigger now" path); doctor rules still require the date match.
func EvaluateReminders(
	rules []models.ActiveReminder,
	appts []models.DoctorAppointment,
	currentDate, currentTime string,
	force bool,
) []FiredReminder {
	triggeredBy := "scheduled_time"
	if force {
		triggeredBy = "force_check"
	}

	var fired []FiredReminder
	for _, r := range rules {
		if !r.Kind.IsTimeBased() {
			continue // doctor rules fire off the appointment table below
		}
		if r.TriggerTime != currentTime && !force {
			continue
		}
		fired = append(fired, FiredReminder{
			Type:        r.Kind,
			Time:        r.TriggerTime,
			Message:     r.Message,
			PushTitle:   orDefault(r.PushTitle, "Diet Planner Reminder"),
			PushBody:    orDefault(r.PushBody, r.Message),
			ActionData:  decodeActionData(r.ActionData),
			Timestamp:   currentDate + " " + currentTime,
			TriggeredBy: triggeredBy,
		})
	}

	for _, a := range appts {
		if a.NextReminderDate != currentDate {
			continue
		}
		if a.AppointmentTime != currentTime && !force {
			continue
		}
		fired = append(fired, FiredReminder{
			Type: models.DoctorKind(a.Frequency),
			Time: a.AppointmentTime,
			Message: fmt.Sprintf(
				"Doctor checkup reminder! Your %s %s is scheduled for tomorrow (%s). Don't forget to book your appointment!",
				a.Frequency.Text(), strings.ToLower(a.DoctorType), a.AppointmentDate),
			PushTitle: "Doctor Checkup Tomorrow!",
			PushBody:  fmt.Sprintf("Your %s %s is scheduled for tomorrow", a.Frequency.Text(), strings.ToLower(a.DoctorType)),
			ActionData: map[string]any{
				"reminder_type":    "doctor",
				"appointment_date": a.AppointmentDate,
				"appointment_time": a.AppointmentTime,
				"doctor_type":      a.DoctorType,
				"frequency":        string(a.Frequency),
			},
			Timestamp:   currentDate + " " + currentTime,
			TriggeredBy: triggeredBy,
		})
	}
	return fired
}

// UpcomingReminder is one reminder still ahead of the clock today,
// sent as the initial snapshot on a fresh websocket connection.
type UpcomingReminder struct {
	Type    models.ReminderKind `json:"type"`
	Time    string              `json:"time"`
	Message string              `json:"message"`
}

// PendingReminders lists what is still due later today: time-based rules
// with a trigger time after currentTime, plus doctor appointments whose
// reminder date is today and whose time has not passed. Sorted by time.
func PendingReminders(
	rules []models.ActiveReminder,
	appts []models.DoctorAppointment,
	currentDate, currentTime string,
) []UpcomingReminder {
	pending := []UpcomingReminder{}
	for _, r := range rules {
		if !r.Kind.IsTimeBased() || r.TriggerTime <= currentTime {
			continue
		}
		pending = append(pending, UpcomingReminder{Type: r.Kind, Time: r.TriggerTime, Message: r.Message})
	}
	for _, a := range appts {
		if a.NextReminderDate != currentDate || a.AppointmentTime <= currentTime {
			continue
		}
		pending = append(pending, UpcomingReminder{
			Type:    models.DoctorKind(a.Frequency),
			Time:    a.AppointmentTime,
			Message: fmt.Sprintf("%s %s scheduled for tomorrow (%s)", a.Frequency.Text(), strings.ToLower(a.DoctorType), a.AppointmentDate),
		})
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Time < pending[j].Time })
	return pending
}

// PendingToday loads the user's active rules and appointments and returns
// what remains due after now.
func (s *ReminderService) PendingToday(userID uint, now time.Time) ([]UpcomingReminder, error) {
	var rules []models.ActiveReminder
	if err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&rules).Error; err != nil {
		return nil, err
	}
	var appts []models.DoctorAppointment
	if err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&appts).Error; err != nil {
		return nil, err
	}
	return PendingReminders(rules, appts, now.Format("2006-01-02"), now.Format("15:04")), nil
}

// CheckReminders evaluates the user's rule set against (date, time) and
// dispatches every fired reminder. One failed delivery never blocks the
// rest of the tick.
func (s *ReminderService) CheckReminders(userID uint, currentDate, currentTime string, force bool) ([]FiredReminder, error) {
	var rules []models.ActiveReminder
	if err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&rules).Error; err != nil {
		return nil, err
	}

	var appts []models.DoctorAppointment
	if err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&appts).Error; err != nil {
		return nil, err
	}

	fired := EvaluateReminders(rules, appts, currentDate, currentTime, force)
	for _, f := range fired {
		s.dispatch(userID, f)
	}
	return fired, nil
}

// TriggerAllReminders fires every active rule immediately with a [TEST]
// prefix, regardless of schedule. Manual test path.
func (s *ReminderService) TriggerAllReminders(userID uint) ([]FiredReminder, error) {
	var rules []models.ActiveReminder
	if err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&rules).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	currentDate := now.Format("2006-01-02")
	currentTime := now.Format("15:04")

	fired := make([]FiredReminder, 0, len(rules))
	for _, r := range rules {
		f := FiredReminder{
			Type:        r.Kind,
			Time:        r.TriggerTime,
			Message:     r.Message,
			PushTitle:   "[TEST] " + orDefault(r.PushTitle, "Diet Planner Reminder"),
			PushBody:    "[TEST NOW] " + orDefault(r.PushBody, r.Message),
			ActionData:  decodeActionData(r.ActionData),
			Timestamp:   currentDate + " " + currentTime,
			TriggeredBy: "manual_test",
		}
		fired = append(fired, f)
		s.dispatch(userID, f)
	}
	return fired, nil
}

// dispatch hands one fired reminder to the delivery channels. Best-effort:
// failures are logged, never escalated to the engine.
func (s *ReminderService) dispatch(userID uint, f FiredReminder) {
	if s.push != nil {
		data := map[string]string{"type": string(f.Type), "timestamp": f.Timestamp}
		for k, v := range f.ActionData {
			data[k] = fmt.Sprint(v)
		}
		s.push.PushToUser(userID, f.PushTitle, f.PushBody, data)
	}
	if s.hub != nil {
		s.hub.BroadcastReminder(userID, f)
	}
	if f.Type.IsDoctor() {
		var user models.User
		if err := s.db.First(&user, userID).Error; err == nil && user.Email != "" {
			if err := utils.SendCheckupEmail(user.Email, f.PushTitle, f.Message); err != nil {
				log.Printf("checkup email to user %d failed: %v", userID, err)
			}
		}
	}
}

// SetupReminders replaces the user's standing meal and water rules with the
// defaults: three meals plus a water reminder every two hours 08:00-20:00.
func (s *ReminderService) SetupReminders(userID uint) (mealCount, waterCount int, err error) {
	mealDefaults := []models.ActiveReminder{
		{
			UserID: userID, Kind: models.KindMealBreakfast, TriggerTime: "08:00", IsActive: true,
			Message:    "Good morning! Time for a healthy breakfast to start your day right.",
			PushTitle:  "Breakfast Time!", PushBody: "Start your day with a nutritious breakfast",
			ActionData: encodeActionData(map[string]any{"meal_type": string(models.SlotMorning), "meal_name": "breakfast"}),
		},
		{
			UserID: userID, Kind: models.KindMealLunch, TriggerTime: "13:00", IsActive: true,
			Message:    "Lunch time! Fuel your afternoon with nutritious foods.",
			PushTitle:  "Lunch Time!", PushBody: "Time to refuel with a healthy lunch",
			ActionData: encodeActionData(map[string]any{"meal_type": string(models.SlotAfternoon), "meal_name": "lunch"}),
		},
		{
			UserID: userID, Kind: models.KindMealDinner, TriggerTime: "19:00", IsActive: true,
			Message:    "Dinner time! End your day with a balanced meal.",
			PushTitle:  "Dinner Time!", PushBody: "End your day with a balanced dinner",
			ActionData: encodeActionData(map[string]any{"meal_type": string(models.SlotDinner), "meal_name": "dinner"}),
		},
	}

	var waterDefaults []models.ActiveReminder
	for hour := 8; hour <= 20; hour += 2 {
		t := fmt.Sprintf("%02d:00", hour)
		waterDefaults = append(waterDefaults, models.ActiveReminder{
			UserID: userID, Kind: models.KindWater, TriggerTime: t, IsActive: true,
			Message:    "Time to hydrate! Drink a glass of water.",
			PushTitle:  "Water Reminder", PushBody: fmt.Sprintf("Time for your %s hydration break!", t),
			ActionData: encodeActionData(map[string]any{"reminder_type": "water", "time": t}),
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND kind NOT LIKE ?", userID, models.DoctorKindPrefix+"%").
			Delete(&models.ActiveReminder{}).Error; err != nil {
			return err
		}
		for i := range mealDefaults {
			if err := tx.Create(&mealDefaults[i]).Error; err != nil {
				return err
			}
		}
		for i := range waterDefaults {
			if err := tx.Create(&waterDefaults[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return len(mealDefaults), len(waterDefaults), nil
}

// NextCheckup computes the next checkup and its reminder date from a last
// visit and a frequency: checkup = last visit + period, reminder = checkup
// minus one day.
func NextCheckup(lastVisit time.Time, freq models.CheckupFrequency) (checkup, reminder time.Time, err error) {
	period, ok := freq.Period()
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidFrequency
	}
	checkup = lastVisit.Add(period)
	reminder = checkup.AddDate(0, 0, -1)
	return checkup, reminder, nil
}

// DoctorReminderResult summarizes a registered doctor reminder.
type DoctorReminderResult struct {
	DoctorType   string `json:"doctor_type"`
	LastVisit    string `json:"last_visit"`
	NextCheckup  string `json:"next_checkup"`
	NextReminder string `json:"next_reminder"`
	Frequency    string `json:"frequency"`
	ReminderTime string `json:"reminder_time"`
}

// SetupDoctorReminder registers (or replaces) the doctor checkup reminder
// for a user. The prior appointment for the same doctor type and all
// doctor rules are discarded atomically, never merged.
func (s *ReminderService) SetupDoctorReminder(userID uint, doctorType, lastVisitDate string, freq models.CheckupFrequency, reminderTime string) (*DoctorReminderResult, error) {
	lastVisit, err := time.Parse("2006-01-02", lastVisitDate)
	if err != nil {
		return nil, fmt.Errorf("invalid last visit date: %w", err)
	}
	checkup, reminder, err := NextCheckup(lastVisit, freq)
	if err != nil {
		return nil, err
	}

	checkupStr := checkup.Format("2006-01-02")
	reminderStr := reminder.Format("2006-01-02")

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND doctor_type = ?", userID, doctorType).
			Delete(&models.DoctorAppointment{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.DoctorAppointment{
			UserID:           userID,
			AppointmentDate:  checkupStr,
			AppointmentTime:  reminderTime,
			DoctorType:       doctorType,
			Frequency:        freq,
			LastVisitDate:    lastVisitDate,
			NextReminderDate: reminderStr,
			IsActive:         true,
		}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("user_id = ? AND kind LIKE ?", userID, models.DoctorKindPrefix+"%").
			Delete(&models.ActiveReminder{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.ActiveReminder{
			UserID:      userID,
			Kind:        models.DoctorKind(freq),
			TriggerTime: reminderTime,
			Message: fmt.Sprintf(
				"Doctor checkup reminder! Your %s %s is scheduled for tomorrow (%s). Don't forget to book your appointment!",
				freq.Text(), strings.ToLower(doctorType), checkupStr),
			PushTitle: "Doctor Checkup Reminder",
			PushBody:  fmt.Sprintf("Your %s checkup is tomorrow!", freq.Text()),
			ActionData: encodeActionData(map[string]any{
				"reminder_type": "doctor",
				"checkup_date":  checkupStr,
				"frequency":     string(freq),
				"doctor_type":   doctorType,
			}),
			IsActive: true,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &DoctorReminderResult{
		DoctorType:   doctorType,
		LastVisit:    lastVisitDate,
		NextCheckup:  checkupStr,
		NextReminder: reminderStr,
		Frequency:    freq.Text(),
		ReminderTime: reminderTime,
	}, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func decodeActionData(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return map[string]any{}
	}
	return data
}

func encodeActionData(data map[string]any) string {
	b, _ := json.Marshal(data)
	return string(b)
}
