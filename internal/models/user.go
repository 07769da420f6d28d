// Package models defines the user profile record and the closed
// enumerations its fields are drawn from.
package models

// Gender is a closed set of profile gender choices.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the enumerated options.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Degree is a closed set of academic degree levels.
type Degree string

const (
	DegreeAssociate Degree = "associate"
	DegreeBachelor  Degree = "bachelor"
	DegreeMaster    Degree = "master"
	DegreeDoctorate Degree = "doctorate"
)

// Valid reports whether d is one of the enumerated degree levels.
func (d Degree) Valid() bool {
	switch d {
	case DegreeAssociate, DegreeBachelor, DegreeMaster, DegreeDoctorate:
		return true
	default:
		return false
	}
}

// State is a labeled choice from the fixed list of Brazilian federative
// units: a two-letter code plus a display label. Both parts must be
// present for the choice to count as filled in.
type State struct {
	Code  string `json:"value"`
	Label string `json:"label"`
}

// Filled reports whether both the code and the label are present.
func (s State) Filled() bool {
	return s.Code != "" && s.Label != ""
}

// States lists the 26 Brazilian states plus the Federal District.
var States = []State{
	{Code: "AC", Label: "Acre"},
	{Code: "AL", Label: "Alagoas"},
	{Code: "AP", Label: "Amapá"},
	{Code: "AM", Label: "Amazonas"},
	{Code: "BA", Label: "Bahia"},
	{Code: "CE", Label: "Ceará"},
	{Code: "DF", Label: "Distrito Federal"},
	{Code: "ES", Label: "Espírito Santo"},
	{Code: "GO", Label: "Goiás"},
	{Code: "MA", Label: "Maranhão"},
	{Code: "MT", Label: "Mato Grosso"},
	{Code: "MS", Label: "Mato Grosso do Sul"},
	{Code: "MG", Label: "Minas Gerais"},
	{Code: "PA", Label: "Pará"},
	{Code: "PB", Label: "Paraíba"},
	{Code: "PR", Label: "Paraná"},
	{Code: "PE", Label: "Pernambuco"},
	{Code: "PI", Label: "Piauí"},
	{Code: "RJ", Label: "Rio de Janeiro"},
	{Code: "RN", Label: "Rio Grande do Norte"},
	{Code: "RS", Label: "Rio Grande do Sul"},
	{Code: "RO", Label: "Rondônia"},
	{Code: "RR", Label: "Roraima"},
	{Code: "SC", Label: "Santa Catarina"},
	{Code: "SP", Label: "São Paulo"},
	{Code: "SE", Label: "Sergipe"},
	{Code: "TO", Label: "Tocantins"},
}

// StateByCode returns the state with the given two-letter code.
func StateByCode(code string) (State, bool) {
	for _, s := range States {
		if s.Code == code {
			return s, true
		}
	}
	return State{}, false
}

// TechArea is a selectable area of interest: a stable code plus a
// display label.
type TechArea struct {
	Code  string `json:"value"`
	Label string `json:"label"`
}

// TechAreas is the fixed list of selectable tech areas.
var TechAreas = []TechArea{
	{Code: "frontend", Label: "Front-end Development"},
	{Code: "backend", Label: "Back-end Development"},
	{Code: "fullstack", Label: "Full-stack Development"},
	{Code: "mobile", Label: "Mobile Development"},
	{Code: "devops", Label: "DevOps"},
	{Code: "cloud", Label: "Cloud Computing"},
	{Code: "ai", Label: "Artificial Intelligence"},
	{Code: "data_science", Label: "Data Science"},
	{Code: "cybersecurity", Label: "Cybersecurity"},
	{Code: "blockchain", Label: "Blockchain"},
	{Code: "ui_ux", Label: "UI/UX Design"},
	{Code: "qa", Label: "Quality Assurance"},
	{Code: "game_dev", Label: "Game Development"},
	{Code: "embedded", Label: "Embedded Systems"},
	{Code: "database", Label: "Database Administration"},
	{Code: "networking", Label: "Networking"},
	{Code: "it_support", Label: "IT Support"},
	{Code: "project_management", Label: "Project Management"},
	{Code: "business_analysis", Label: "Business Analysis"},
	{Code: "agile", Label: "Agile Methodologies"},
}

// ValidTechArea reports whether code names one of the fixed tech areas.
func ValidTechArea(code string) bool {
	for _, a := range TechAreas {
		if a.Code == code {
			return true
		}
	}
	return false
}

// Academic is one entry of a user's academic background.
type Academic struct {
	University string `json:"university" validate:"required"`
	Degree     Degree `json:"degree" validate:"required,degree"`
}

// User is the persisted profile record. Email is the sole identity used
// for lookup, update and deletion; ID is assigned once at creation.
//
// Password is stored and compared in plain text, matching the observed
// behavior of the system this replaces.
type User struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name" validate:"required"`
	Email              string     `json:"email" validate:"required,email"`
	Password           string     `json:"password" validate:"min=6,strongpassword"`
	BirthDate          string     `json:"birthDate" validate:"required,notfuture,adult"`
	Gender             Gender     `json:"gender" validate:"gender"`
	State              State      `json:"state"`
	TechAreas          []string   `json:"techAreas" validate:"min=1,dive,techarea"`
	ProfileImage       string     `json:"profileImage" validate:"required"`
	AcceptTerms        bool       `json:"acceptTerms" validate:"accepted"`
	AcademicBackground []Academic `json:"academicBackground" validate:"min=1,dive"`
}

// Merge overlays the filled-in fields of edited on top of u and returns
// the combined record. Zero-valued fields of edited keep the current
// value, so a partial edit never blanks out data. ID and AcceptTerms
// always come from the stored record: the first is immutable, the second
// is only collected at registration.
func (u User) Merge(edited User) User {
	out := u
	if edited.Name != "" {
		out.Name = edited.Name
	}
	if edited.Email != "" {
		out.Email = edited.Email
	}
	if edited.Password != "" {
		out.Password = edited.Password
	}
	if edited.BirthDate != "" {
		out.BirthDate = edited.BirthDate
	}
	if edited.Gender != "" {
		out.Gender = edited.Gender
	}
	if edited.State.Filled() {
		out.State = edited.State
	}
	if len(edited.TechAreas) > 0 {
		out.TechAreas = edited.TechAreas
	}
	if edited.ProfileImage != "" {
		out.ProfileImage = edited.ProfileImage
	}
	if len(edited.AcademicBackground) > 0 {
		out.AcademicBackground = edited.AcademicBackground
	}
	return out
}
