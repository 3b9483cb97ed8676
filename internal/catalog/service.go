package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/courses.json
var embeddedCatalog []byte

// catalogFile is the on-disk shape of the reference dataset. Every course
// offers the same shared miscellaneous fee list, so the file stores the list
// once and the loader attaches it to each course.
type catalogFile struct {
	MiscFees []MiscFee `json:"miscFees"`
	Courses  []Course  `json:"courses"`
}

// Service provides read-only lookup over the course catalog.
type Service struct {
	courses []Course
	byID    map[string]Course
}

// Load parses a catalog document and builds a Service over it.
func Load(data []byte) (*Service, error) {
	var file catalogFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(file.Courses) == 0 {
		return nil, fmt.Errorf("catalog contains no courses")
	}

	for i := range file.MiscFees {
		mf := &file.MiscFees[i]
		if mf.ID == "" {
			return nil, fmt.Errorf("misc fee at index %d has no id", i)
		}
		switch mf.Pricing {
		case PricingFlat, PricingPerUnit:
		case "":
			mf.Pricing = PricingFlat
		default:
			return nil, fmt.Errorf("misc fee %s: unknown pricing %q", mf.ID, mf.Pricing)
		}
	}

	byID := make(map[string]Course, len(file.Courses))
	for i := range file.Courses {
		course := &file.Courses[i]
		if course.ID == "" {
			return nil, fmt.Errorf("course at index %d has no id", i)
		}
		if _, dup := byID[course.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %s", course.ID)
		}
		if course.DurationMonths <= 0 {
			return nil, fmt.Errorf("course %s: duration must be positive", course.ID)
		}
		if len(course.MiscFees) == 0 {
			course.MiscFees = file.MiscFees
		}
		byID[course.ID] = *course
	}
	return &Service{courses: file.Courses, byID: byID}, nil
}

// LoadEmbedded builds a Service over the dataset compiled into the binary.
func LoadEmbedded() (*Service, error) {
	return Load(embeddedCatalog)
}

// List returns every course in catalog order.
func (s *Service) List() []Course {
	out := make([]Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// ByID resolves a course by identifier.
func (s *Service) ByID(id string) (Course, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// First returns the first catalog course, used as the default selection for
// new pathway entries.
func (s *Service) First() Course {
	return s.courses[0]
}

// Len reports the number of courses in the catalog.
func (s *Service) Len() int {
	return len(s.courses)
}
