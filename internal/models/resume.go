package models

// PersonalInfo is the resume contact block.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Education is one education entry.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
}

// Experience is one work experience entry.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Project is one project entry.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
}

// CategorizedSkills groups skills into the three resume buckets.
// All three slices are always present after load, possibly empty.
type CategorizedSkills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// Flatten returns all skills in bucket order.
func (s CategorizedSkills) Flatten() []string {
	out := make([]string, 0, len(s.Technical)+len(s.Soft)+len(s.Tools))
	out = append(out, s.Technical...)
	out = append(out, s.Soft...)
	out = append(out, s.Tools...)
	return out
}

// ResumeLinks holds profile URLs.
type ResumeLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
}

// ResumeData is the whole resume document. Singleton per profile,
// overwritten wholesale on each edit.
type ResumeData struct {
	Personal   PersonalInfo      `json:"personal"`
	Summary    string            `json:"summary"`
	Education  []Education       `json:"education"`
	Experience []Experience      `json:"experience"`
	Projects   []Project         `json:"projects"`
	Skills     CategorizedSkills `json:"skills"`
	Links      ResumeLinks       `json:"links"`
}

// ResumeTemplate is the selected preview template.
type ResumeTemplate string

// ResumeTemplate constants.
const (
	TemplateClassic ResumeTemplate = "classic"
	TemplateModern  ResumeTemplate = "modern"
	TemplateMinimal ResumeTemplate = "minimal"
)

// IsValid checks the template against the closed set.
func (t ResumeTemplate) IsValid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateMinimal:
		return true
	}
	return false
}

// ResumeAccent is the selected accent color for the preview.
type ResumeAccent string

// ResumeAccent constants.
const (
	AccentBlue    ResumeAccent = "blue"
	AccentEmerald ResumeAccent = "emerald"
	AccentViolet  ResumeAccent = "violet"
	AccentRose    ResumeAccent = "rose"
)

// IsValid checks the accent against the closed set.
func (a ResumeAccent) IsValid() bool {
	switch a {
	case AccentBlue, AccentEmerald, AccentViolet, AccentRose:
		return true
	}
	return false
}

// EmptyResume returns the documented default resume.
func EmptyResume() ResumeData {
	return ResumeData{
		Education:  []Education{},
		Experience: []Experience{},
		Projects:   []Project{},
		Skills: CategorizedSkills{
			Technical: []string{},
			Soft:      []string{},
			Tools:     []string{},
		},
	}
}

// SampleResume returns a fully populated fixture used by tests and the
// preview seeding flow.
func SampleResume() ResumeData {
	return ResumeData{
		Personal: PersonalInfo{
			Name:     "Arjun Mehta",
			Email:    "arjun.mehta@email.com",
			Phone:    "+91 98765 43210",
			Location: "Bangalore, India",
		},
		Summary: "Full-stack developer with 2+ years of experience building scalable web applications. Built and led projects across React, Node.js, and cloud infrastructure. Passionate about clean code and user-centric design.",
		Education: []Education{
			{
				ID:          "edu-1",
				Institution: "Indian Institute of Technology, Bangalore",
				Degree:      "B.Tech",
				Field:       "Computer Science & Engineering",
				StartYear:   "2019",
				EndYear:     "2023",
			},
		},
		Experience: []Experience{
			{
				ID:          "exp-1",
				Company:     "TechCorp Solutions",
				Role:        "Software Engineer",
				StartDate:   "Jul 2023",
				EndDate:     "Present",
				Description: "Built microservices handling 10K+ requests/sec. Led migration from monolith to event-driven architecture. Reduced API latency by 40%.",
			},
			{
				ID:          "exp-2",
				Company:     "StartupXYZ",
				Role:        "Frontend Intern",
				StartDate:   "Jan 2023",
				EndDate:     "Jun 2023",
				Description: "Developed responsive dashboard with React and TypeScript. Implemented real-time data visualization using D3.js.",
			},
		},
		Projects: []Project{
			{
				ID:          "proj-1",
				Title:       "DevConnect — Developer Social Platform",
				Description: "A full-stack social platform for developers with real-time chat, project showcasing, and skill-based matching.",
				TechStack:   []string{"React", "Node.js", "PostgreSQL", "Socket.io"},
			},
			{
				ID:          "proj-2",
				Title:       "SmartExpense Tracker",
				Description: "Expense categorization app with budget forecasting and receipt scanning via OCR.",
				TechStack:   []string{"React Native", "Python", "TensorFlow Lite"},
			},
		},
		Skills: CategorizedSkills{
			Technical: []string{"React", "TypeScript", "Node.js", "Python", "PostgreSQL"},
			Soft:      []string{"Communication", "Mentoring"},
			Tools:     []string{"Docker", "AWS", "Git"},
		},
		Links: ResumeLinks{
			Github:   "https://github.com/arjunmehta",
			Linkedin: "https://linkedin.com/in/arjunmehta",
		},
	}
}
