// internal/domain/plan.go
package domain

// ActivityType describes how a planning card is executed.
type ActivityType string

const (
	ActivityNone    ActivityType = "none"
	ActivityRound   ActivityType = "round"
	ActivityForTime ActivityType = "fortime"
	ActivityEMOM    ActivityType = "emom"
	ActivityAMRAP   ActivityType = "amrap"
	ActivityTabata  ActivityType = "tabata"
)

// Plan is the training plan of one athlete for one date, as prepared by a coach.
// A date may carry several plans; they are fetched and replaced as a list.
type Plan struct {
	ID         int64            `json:"id"`
	PlanningID int64            `json:"planningId"`
	CoachID    *int64           `json:"coachId,omitempty"`
	Date       DayBucket        `json:"date"`
	Columns    []PlanningColumn `json:"columns"`
}

// Column returns the index of the column with the given id, or -1.
func (p Plan) Column(columnID int64) int {
	for i := range p.Columns {
		if p.Columns[i].ID == columnID {
			return i
		}
	}
	return -1
}

// PlanningColumn is one training block of a plan (warm-up, strength, WOD...).
type PlanningColumn struct {
	ID               int64          `json:"id"`
	PlanningColumnID int64          `json:"planningColumnId"`
	Name             string         `json:"name"`
	Order            int            `json:"order"`
	Records          []Record       `json:"record,omitempty"` // zero or one element
	Cards            []PlanningCard `json:"cards"`
}

// Record returns the column's record, or nil when the block was never completed.
func (c PlanningColumn) Record() *Record {
	if len(c.Records) == 0 {
		return nil
	}
	r := c.Records[0]
	return &r
}

type PlanningCard struct {
	ID                     int64          `json:"id"`
	PlanningColumnDetailID int64          `json:"planningColumnDetailId"`
	ActivityType           ActivityType   `json:"activityType"`
	Comment                string         `json:"comment,omitempty"`
	Value1                 string         `json:"value1,omitempty"`
	Value2                 string         `json:"value2,omitempty"`
	Value3                 string         `json:"value3,omitempty"`
	Order                  int            `json:"order"`
	Exercises              []ExerciseItem `json:"exercises"`
}

type ExerciseItem struct {
	ID       int64    `json:"id"`
	Order    int      `json:"order"`
	Weight   string   `json:"weight,omitempty"`
	Reps     string   `json:"reps,omitempty"`
	Rounds   string   `json:"rounds,omitempty"`
	Distance string   `json:"distance,omitempty"`
	Time     string   `json:"time,omitempty"`
	Exercise Exercise `json:"exercise"`
}

type Exercise struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// Record is the completion/note state of a column for its date.
// Its ID is assigned by the server on creation.
type Record struct {
	ID       int64   `json:"id"`
	IsFinish bool    `json:"isFinish"`
	Note     *string `json:"note,omitempty"`
	Time     *string `json:"time,omitempty"`
}

// RecordPatch carries the fields a caller wants to change; nil fields are left untouched.
type RecordPatch struct {
	IsFinish *bool   `json:"isFinish,omitempty"`
	Note     *string `json:"note,omitempty"`
	Time     *string `json:"time,omitempty"`
}

// Normalize applies the domain rule that un-finishing a block clears its note.
func (p RecordPatch) Normalize() RecordPatch {
	if p.IsFinish != nil && !*p.IsFinish {
		empty := ""
		p.Note = &empty
	}
	return p
}

// IsEmpty reports whether the patch changes nothing.
func (p RecordPatch) IsEmpty() bool {
	return p.IsFinish == nil && p.Note == nil && p.Time == nil
}

// ApplyTo merges the patch over r and returns the result; r is not modified.
func (p RecordPatch) ApplyTo(r Record) Record {
	if p.IsFinish != nil {
		r.IsFinish = *p.IsFinish
	}
	if p.Note != nil {
		note := *p.Note
		r.Note = &note
	}
	if p.Time != nil {
		t := *p.Time
		r.Time = &t
	}
	return r
}

// Bool and String are small helpers for building patches.
func Bool(v bool) *bool       { return &v }
func String(v string) *string { return &v }
