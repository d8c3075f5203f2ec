package curriculum

// Document is a generated program as returned by the backend's generate endpoint.
// Semesters keep the order in which the backend listed them.
type Document struct {
	ProgramTitle           string     `json:"program_title"`
	ProgramType            string     `json:"program_type,omitempty"`
	Domain                 string     `json:"domain,omitempty"`
	AcademicLevel          string     `json:"academic_level,omitempty"`
	TotalSemesters         int        `json:"total_semesters,omitempty"`
	ProgramRationale       string     `json:"program_rationale"`
	TargetCareers          []string   `json:"target_careers"`
	AccreditationAligned   string     `json:"accreditation_aligned,omitempty"`
	Semesters              []Semester `json:"-"`
	RecommendedSkills      []string   `json:"recommended_skills,omitempty"`
	IndustryAlignmentNotes string     `json:"industry_alignment_notes"`
	OptimizationTips       []string   `json:"optimization_tips"`
}

// Semester is one entry of the courses_by_semester mapping.
type Semester struct {
	Label   string   `json:"label"`
	Courses []Course `json:"courses"`
}

// Course is a single course inside a semester.
type Course struct {
	CourseCode    string    `json:"course_code"`
	CourseName    string    `json:"course_name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Credits       float64   `json:"credits"`
	WeeklyTopics  []Topic   `json:"weekly_topics"`
	Outcomes      []Outcome `json:"outcomes"`
	Prerequisites []string  `json:"prerequisites,omitempty"`
}

// Topic is one week of a course roadmap.
type Topic struct {
	Week        int      `json:"week"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Resources   []string `json:"resources,omitempty"`
}

// Outcome is a learning outcome of a course.
type Outcome struct {
	Outcome    string `json:"outcome"`
	BloomLevel string `json:"bloom_level,omitempty"`
	Code       string `json:"code,omitempty"`
}

// CourseCount returns the total number of courses across all semesters.
func (d *Document) CourseCount() int {
	n := 0
	for _, s := range d.Semesters {
		n += len(s.Courses)
	}
	return n
}

// ResourceBundle holds curated learning resources for a course. A non-empty
// Error means the backend could only return a degraded result.
type ResourceBundle struct {
	Moocs   []Mooc     `json:"moocs"`
	Books   []Book     `json:"books"`
	Youtube []Playlist `json:"youtube"`
	Error   string     `json:"error,omitempty"`
}

// Mooc is an online course recommendation.
type Mooc struct {
	Title      string `json:"title"`
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	Instructor string `json:"instructor"`
}

// Book is a textbook recommendation.
type Book struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Edition string `json:"edition"`
	ISBN    string `json:"isbn"`
}

// Playlist is a YouTube playlist or channel recommendation.
type Playlist struct {
	Title   string `json:"title"`
	Creator string `json:"creator"`
	URL     string `json:"url"`
	Videos  string `json:"videos"`
}

// GenerateRequest carries the fields of the curriculum form.
type GenerateRequest struct {
	ProgramType       string `json:"program_type"`
	Domain            string `json:"domain"`
	AcademicLevel     string `json:"academic_level"`
	DurationSemesters int    `json:"duration_semesters"`
	AccreditationBody string `json:"accreditation_body"`
	IndustryKeywords  string `json:"industry_keywords"`
}
