package remote

import (
	"bytes"
	"encoding/json"
	"strconv"

	"alcyxob/training-client/internal/domain"
)

// flexString accepts a JSON string, number or null; the backend is not consistent
// about exercise quantities.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type planDTO struct {
	ID         int64       `json:"id"`
	IDPlanning int64       `json:"idPlanning"`
	Date       string      `json:"date"`
	Data       []columnDTO `json:"data"`
}

type columnDTO struct {
	ID               int64       `json:"id"`
	PlanningColumnID int64       `json:"planningColumnId"`
	ColumnName       string      `json:"columnName"`
	Ord              int         `json:"ord"`
	Record           []recordDTO `json:"record"`
	Cards            []cardDTO   `json:"cards"`
}

type recordDTO struct {
	ID       int64   `json:"id"`
	IsFinish bool    `json:"isFinish"`
	Note     *string `json:"note"`
	Time     *string `json:"time"`
}

type cardDTO struct {
	ID                     int64         `json:"id"`
	PlanningColumnDetailID int64         `json:"planningColumnDetailId"`
	SelectedActivityType   string        `json:"selectedActivityType"`
	Comment                flexString    `json:"comment"`
	Value1                 flexString    `json:"value1"`
	Value2                 flexString    `json:"value2"`
	Value3                 flexString    `json:"value3"`
	Ord                    int           `json:"ord"`
	ExerciseList           []exerciseDTO `json:"exerciseList"`
}

type exerciseDTO struct {
	IDTemp                        int64      `json:"idTemp"`
	PlanningColumnDetailFeatureID int64      `json:"planningColumnDetailFeatureId"`
	Ord                           int        `json:"ord"`
	Weight                        flexString `json:"weight"`
	Reps                          flexString `json:"reps"`
	Rounds                        flexString `json:"rounds"`
	Distance                      flexString `json:"distance"`
	Time                          flexString `json:"time"`
	Exercise                      struct {
		IDExercise   int64  `json:"idExercise"`
		ExerciseName string `json:"exerciseName"`
		VideoURL     string `json:"videoUrl"`
	} `json:"exercise"`
}

func (p planDTO) toDomain(requested domain.DayBucket, coachID *int64) domain.Plan {
	plan := domain.Plan{
		ID:         p.ID,
		PlanningID: p.IDPlanning,
		CoachID:    coachID,
		Date:       requested,
		Columns:    make([]domain.PlanningColumn, 0, len(p.Data)),
	}
	// the backend sends full timestamps for some plans; only the day matters
	if len(p.Date) >= len(domain.DayLayout) {
		if d, err := domain.ParseDay(p.Date[:len(domain.DayLayout)]); err == nil {
			plan.Date = d
		}
	}
	for _, c := range p.Data {
		plan.Columns = append(plan.Columns, c.toDomain())
	}
	return plan
}

func (c columnDTO) toDomain() domain.PlanningColumn {
	col := domain.PlanningColumn{
		ID:               c.ID,
		PlanningColumnID: c.PlanningColumnID,
		Name:             c.ColumnName,
		Order:            c.Ord,
		Cards:            make([]domain.PlanningCard, 0, len(c.Cards)),
	}
	if len(c.Record) > 0 {
		r := c.Record[0]
		col.Records = []domain.Record{{ID: r.ID, IsFinish: r.IsFinish, Note: r.Note, Time: r.Time}}
	}
	for _, card := range c.Cards {
		col.Cards = append(col.Cards, card.toDomain())
	}
	return col
}

func (c cardDTO) toDomain() domain.PlanningCard {
	card := domain.PlanningCard{
		ID:                     c.ID,
		PlanningColumnDetailID: c.PlanningColumnDetailID,
		ActivityType:           domain.ActivityType(c.SelectedActivityType),
		Comment:                string(c.Comment),
		Value1:                 string(c.Value1),
		Value2:                 string(c.Value2),
		Value3:                 string(c.Value3),
		Order:                  c.Ord,
		Exercises:              make([]domain.ExerciseItem, 0, len(c.ExerciseList)),
	}
	if card.ActivityType == "" {
		card.ActivityType = domain.ActivityNone
	}
	for _, e := range c.ExerciseList {
		card.Exercises = append(card.Exercises, domain.ExerciseItem{
			ID:       e.PlanningColumnDetailFeatureID,
			Order:    e.Ord,
			Weight:   string(e.Weight),
			Reps:     string(e.Reps),
			Rounds:   string(e.Rounds),
			Distance: string(e.Distance),
			Time:     string(e.Time),
			Exercise: domain.Exercise{
				ID:       e.Exercise.IDExercise,
				Name:     e.Exercise.ExerciseName,
				VideoURL: e.Exercise.VideoURL,
			},
		})
	}
	return card
}

type coachDTO struct {
	ID      flexString `json:"id"`
	Blocked bool       `json:"blocked"`
	Coach   struct {
		ID        int64   `json:"id"`
		FirstName string  `json:"firstName"`
		LastName  string  `json:"lastName"`
		Email     string  `json:"email"`
		Gender    string  `json:"gender"`
		PathPhoto *string `json:"path_photo"`
	} `json:"coach"`
}

func (c coachDTO) toDomain() domain.Coach {
	id := string(c.ID)
	if id == "" {
		id = strconv.FormatInt(c.Coach.ID, 10)
	}
	coach := domain.Coach{
		ID:      id,
		Blocked: c.Blocked,
		Profile: domain.CoachProfile{
			ID:        c.Coach.ID,
			FirstName: c.Coach.FirstName,
			LastName:  c.Coach.LastName,
			Email:     c.Coach.Email,
			Gender:    c.Coach.Gender,
		},
	}
	if c.Coach.PathPhoto != nil {
		coach.Profile.ImageDescriptor = *c.Coach.PathPhoto
	}
	return coach
}

type userDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsNew     bool   `json:"isNew"`
}

func (u userDTO) toDomain() domain.User {
	return domain.User{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, IsNew: u.IsNew}
}
