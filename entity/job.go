package entity

// Job field names, as used by filters, facets and columns.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldPriceType   = "price_type"
	FieldLocation    = "location"
	FieldDistance    = "distance"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldTags        = "tags"
	FieldUrgent      = "urgent"
	FieldApplicants  = "applicants"
	FieldStatus      = "status"
)

// JobFields lists job field names in display order.
var JobFields = []string{
	FieldTitle,
	FieldDescription,
	FieldCategory,
	FieldPrice,
	FieldPriceType,
	FieldLocation,
	FieldDistance,
	FieldDate,
	FieldTime,
	FieldTags,
	FieldUrgent,
	FieldApplicants,
	FieldStatus,
}

// Job is a farm work listing.
type Job struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Price       string   `json:"price" yaml:"price"`
	PriceType   string   `json:"price_type" yaml:"price_type"`
	Location    string   `json:"location" yaml:"location"`
	Distance    float64  `json:"distance" yaml:"distance"` // km
	Date        string   `json:"date" yaml:"date"`
	Time        string   `json:"time" yaml:"time"`
	Tags        []string `json:"tags" yaml:"tags"`
	Urgent      bool     `json:"urgent" yaml:"urgent"`
	Applicants  int      `json:"applicants" yaml:"applicants"`
	Status      string   `json:"status" yaml:"status"`
}

// Key returns the job id.
func (job Job) Key() string {
	return job.ID
}

// Field returns a job field by name.
func (job Job) Field(name string) (Value, bool) {

	switch name {
	case FieldTitle:
		return Value{Raw: job.Title}, true
	case FieldDescription:
		return Value{Raw: job.Description}, true
	case FieldCategory:
		return Value{Raw: job.Category}, true
	case FieldPrice:
		return Value{Raw: job.Price}, true
	case FieldPriceType:
		return Value{Raw: job.PriceType}, true
	case FieldLocation:
		return Value{Raw: job.Location}, true
	case FieldDistance:
		return Value{Raw: job.Distance}, true
	case FieldDate:
		return Value{Raw: job.Date}, true
	case FieldTime:
		return Value{Raw: job.Time}, true
	case FieldTags:
		return Value{Raw: job.Tags}, true
	case FieldUrgent:
		return Value{Raw: job.Urgent}, true
	case FieldApplicants:
		return Value{Raw: job.Applicants}, true
	case FieldStatus:
		return Value{Raw: job.Status}, true
	}
	return Value{}, false
}
