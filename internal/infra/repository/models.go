package repository

import (
	"time"

	"gorm.io/datatypes"
)

// dateLayout stores calendar dates as plain strings so they do not drift across
// time zones.
const dateLayout = time.DateOnly

type moduleModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:64;not null;index"`
	Title     string `gorm:"size:200;not null"`
	CreatedAt time.Time
}

func (moduleModel) TableName() string { return "modules" }

type taskModel struct {
	ID                    string `gorm:"primaryKey;size:36"`
	ModuleID              string `gorm:"size:36;not null;index"`
	Title                 string `gorm:"size:200;not null"`
	WeeklyDurationMinutes int    `gorm:"not null"`
	Category              string `gorm:"size:16;not null"`
	StartDate             *time.Time
	DueDate               *time.Time
	ExamDate              *time.Time
	CreatedAt             time.Time

	CostProfile *costProfileModel `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (taskModel) TableName() string { return "tasks" }

type costProfileModel struct {
	TaskID      string         `gorm:"primaryKey;size:36"`
	Data        datatypes.JSON `gorm:"not null"`
	PenaltyData datatypes.JSON
	Stale       bool `gorm:"not null;default:false"`
	UpdatedAt   time.Time
}

func (costProfileModel) TableName() string { return "cost_profiles" }

type planModel struct {
	ID        string      `gorm:"primaryKey;size:36"`
	UserID    string      `gorm:"size:64;not null;uniqueIndex:idx_plan_user_week_revision"`
	WeekStart string      `gorm:"size:10;not null;uniqueIndex:idx_plan_user_week_revision"`
	WeekEnd   string      `gorm:"size:10;not null"`
	Revision  int         `gorm:"not null;uniqueIndex:idx_plan_user_week_revision"`
	PlannedAt time.Time   `gorm:"not null"`
	Units     []unitModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

func (planModel) TableName() string { return "learning_plans" }

type unitModel struct {
	ID                    string    `gorm:"primaryKey;size:36"`
	PlanID                string    `gorm:"size:36;not null;index"`
	TaskID                string    `gorm:"size:36;not null;index"`
	StartAt               time.Time `gorm:"not null"`
	EndAt                 time.Time `gorm:"not null"`
	Status                string    `gorm:"size:16;not null"`
	ActualDurationMinutes *int
	Rating                *ratingModel `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
}

func (unitModel) TableName() string { return "learning_units" }

type ratingModel struct {
	ID                string `gorm:"primaryKey;size:36"`
	UnitID            string `gorm:"size:36;not null;uniqueIndex"`
	Concentration     int    `gorm:"not null"`
	PerceivedDuration int    `gorm:"not null"`
	Achievement       int    `gorm:"not null"`
	CreatedAt         time.Time
}

func (ratingModel) TableName() string { return "unit_ratings" }

type preferencesModel struct {
	UserID                  string `gorm:"primaryKey;size:64"`
	MinUnitMinutes          int    `gorm:"not null;default:0"`
	MaxUnitMinutes          int    `gorm:"not null;default:0"`
	MaxDailyWorkloadMinutes int    `gorm:"not null;default:0"`
	BreakMinutes            int    `gorm:"not null;default:0"`
	DeadlineBufferDays      int    `gorm:"not null;default:0"`
	PreferredTimeBands      datatypes.JSONSlice[string]
	PreferredWeekdays       datatypes.JSONSlice[int]
	UpdatedAt               time.Time
}

func (preferencesModel) TableName() string { return "learning_preferences" }

type freeTimeModel struct {
	ID          string  `gorm:"primaryKey;size:36"`
	UserID      string  `gorm:"size:64;not null;index"`
	Recurring   bool    `gorm:"not null"`
	Weekday     int     `gorm:"not null;default:0"`
	Date        *string `gorm:"size:10"`
	StartMinute int     `gorm:"not null"`
	EndMinute   int     `gorm:"not null"`
}

func (freeTimeModel) TableName() string { return "free_times" }

// Models lists every table managed by Migrate.
func Models() []any {
	return []any{
		&moduleModel{},
		&taskModel{},
		&costProfileModel{},
		&planModel{},
		&unitModel{},
		&ratingModel{},
		&preferencesModel{},
		&freeTimeModel{},
	}
}
