package routines

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/catalog"
)

var (
	ErrRoutineNotFound     = errors.New("routine not found")
	ErrActiveRoutineDelete = errors.New("active routine cannot be deleted, activate another one first")
	ErrDayNotFound         = errors.New("routine day not found")
	ErrAssignmentNotFound  = errors.New("exercise assignment not found")
	ErrInvalidRoutine      = errors.New("invalid routine")
	ErrInvalidDay          = errors.New("invalid routine day")
	ErrInvalidAssignment   = errors.New("invalid exercise assignment")
)

// Weekday follows ISO numbering, Monday is 1 and Sunday is 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func ParseWeekday(s string) (Weekday, error) {
	for _, d := range Weekdays {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday [%s]", s)
}

// WeekdayOf maps a calendar date to its weekday.
func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

type Routine struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Name        string    `json:"name"`
	Archetype   string    `json:"archetype"`
	DaysPerWeek int       `json:"daysPerWeek"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Days        []Day     `json:"days,omitempty"`
}

func (r Routine) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidRoutine)
	}
	if r.DaysPerWeek < 0 || r.DaysPerWeek > 7 {
		return fmt.Errorf("%w: days per week %d", ErrInvalidRoutine, r.DaysPerWeek)
	}
	return nil
}

// DayFor returns the day scheduled on the given weekday, if any.
func (r Routine) DayFor(weekday Weekday) (*Day, bool) {
	for i := range r.Days {
		if r.Days[i].Weekday == weekday {
			return &r.Days[i], true
		}
	}
	return nil, false
}

type Day struct {
	ID         int          `json:"id"`
	RoutineID  int          `json:"routineId"`
	Weekday    Weekday      `json:"weekday"`
	Name       string       `json:"name"`
	Descriptor string       `json:"descriptor"`
	Rest       bool         `json:"rest"`
	Order      int          `json:"order"`
	Exercises  []Assignment `json:"exercises,omitempty"`
}

func (d Day) Validate() error {
	if !d.Weekday.Valid() {
		return fmt.Errorf("%w: weekday %d", ErrInvalidDay, int(d.Weekday))
	}
	if d.Order < 1 || d.Order > 7 {
		return fmt.Errorf("%w: order %d out of 1..7", ErrInvalidDay, d.Order)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidDay)
	}
	return nil
}

type Assignment struct {
	ID           int                 `json:"id"`
	DayID        int                 `json:"dayId"`
	ExerciseID   int                 `json:"exerciseId"`
	ExerciseName string              `json:"exerciseName,omitempty"`
	MuscleGroup  catalog.MuscleGroup `json:"muscleGroup,omitempty"`
	Series       int                 `json:"series"`
	RepsMin      int                 `json:"repsMin"`
	RepsMax      int                 `json:"repsMax"`
	SuggestedKg  float64             `json:"suggestedKg"`
	RestSeconds  int                 `json:"restSeconds"`
	Order        int                 `json:"order"`
}

func (a Assignment) Validate() error {
	switch {
	case a.ExerciseID <= 0:
		return fmt.Errorf("%w: exercise id missing", ErrInvalidAssignment)
	case a.Series < 0:
		return fmt.Errorf("%w: negative series", ErrInvalidAssignment)
	case a.RepsMin < 0 || a.RepsMax < a.RepsMin:
		return fmt.Errorf("%w: reps range %d-%d", ErrInvalidAssignment, a.RepsMin, a.RepsMax)
	case a.SuggestedKg < 0 || a.RestSeconds < 0:
		return fmt.Errorf("%w: negative load or rest", ErrInvalidAssignment)
	case a.Order < 1:
		return fmt.Errorf("%w: order %d", ErrInvalidAssignment, a.Order)
	}
	return nil
}
