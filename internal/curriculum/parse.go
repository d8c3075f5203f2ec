package curriculum

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrMalformed is returned when a backend payload is not valid JSON or lacks
// the structure a caller depends on.
var ErrMalformed = errors.New("malformed curriculum payload")

// Parse decodes a generated curriculum. gjson walks the raw bytes, so the
// courses_by_semester keys come out in the order the backend wrote them.
// Missing scalar fields decode as zero values.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformed)
	}
	bySemester := root.Get("courses_by_semester")
	if !bySemester.IsObject() {
		return nil, fmt.Errorf("%w: courses_by_semester is not a mapping", ErrMalformed)
	}

	doc := &Document{
		ProgramTitle:           root.Get("program_title").String(),
		ProgramType:            root.Get("program_type").String(),
		Domain:                 root.Get("domain").String(),
		AcademicLevel:          root.Get("academic_level").String(),
		TotalSemesters:         int(root.Get("total_semesters").Int()),
		ProgramRationale:       root.Get("program_rationale").String(),
		TargetCareers:          stringList(root.Get("target_careers")),
		AccreditationAligned:   root.Get("accreditation_aligned").String(),
		RecommendedSkills:      stringList(root.Get("recommended_skills")),
		IndustryAlignmentNotes: root.Get("industry_alignment_notes").String(),
		OptimizationTips:       stringList(root.Get("optimization_tips")),
	}

	bySemester.ForEach(func(label, courses gjson.Result) bool {
		sem := Semester{Label: label.String()}
		for _, c := range courses.Array() {
			sem.Courses = append(sem.Courses, parseCourse(c))
		}
		doc.Semesters = append(doc.Semesters, sem)
		return true
	})

	return doc, nil
}

func parseCourse(c gjson.Result) Course {
	course := Course{
		CourseCode:    c.Get("course_code").String(),
		CourseName:    c.Get("course_name").String(),
		Category:      c.Get("category").String(),
		Description:   c.Get("description").String(),
		Credits:       c.Get("credits").Float(),
		Prerequisites: stringList(c.Get("prerequisites")),
	}
	for _, t := range c.Get("weekly_topics").Array() {
		course.WeeklyTopics = append(course.WeeklyTopics, Topic{
			Week:        int(t.Get("week").Int()),
			Title:       t.Get("title").String(),
			Description: t.Get("description").String(),
			Resources:   stringList(t.Get("resources")),
		})
	}
	for _, o := range c.Get("outcomes").Array() {
		course.Outcomes = append(course.Outcomes, Outcome{
			Outcome:    o.Get("outcome").String(),
			BloomLevel: o.Get("bloom_level").String(),
			Code:       o.Get("code").String(),
		})
	}
	return course
}

// ParseResources decodes a resource bundle. A payload carrying only an error
// field is valid and yields a bundle with Error set.
func ParseResources(data []byte) (*ResourceBundle, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: resources payload is not an object", ErrMalformed)
	}

	b := &ResourceBundle{Error: root.Get("error").String()}
	for _, m := range root.Get("moocs").Array() {
		b.Moocs = append(b.Moocs, Mooc{
			Title:      m.Get("title").String(),
			Platform:   m.Get("platform").String(),
			URL:        m.Get("url").String(),
			Instructor: m.Get("instructor").String(),
		})
	}
	for _, bk := range root.Get("books").Array() {
		b.Books = append(b.Books, Book{
			Title:   bk.Get("title").String(),
			Author:  bk.Get("author").String(),
			Edition: bk.Get("edition").String(),
			ISBN:    bk.Get("isbn").String(),
		})
	}
	for _, y := range root.Get("youtube").Array() {
		b.Youtube = append(b.Youtube, Playlist{
			Title:   y.Get("title").String(),
			Creator: y.Get("creator").String(),
			URL:     y.Get("url").String(),
			Videos:  y.Get("videos").String(),
		})
	}
	return b, nil
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	arr := r.Array()
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		out = append(out, v.String())
	}
	return out
}
