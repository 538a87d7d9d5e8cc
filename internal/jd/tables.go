// Package jd extracts skills from job descriptions and generates
// preparation material from static template banks. All generation is
// rule and keyword driven - deterministic by design.
package jd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keyword maps a lower-case match token to its display casing.
type Keyword struct {
	Match   string `yaml:"match"`
	Display string `yaml:"display"`
}

// Category is one skill bucket with its keyword list. Order matters:
// categories are scanned and rendered in declaration order.
type Category struct {
	Name     string    `yaml:"name"`
	Keywords []Keyword `yaml:"keywords"`
}

// Tables is the immutable skill-extraction configuration, loaded once.
type Tables struct {
	Categories []Category `yaml:"categories"`
}

// GeneralCategory and GeneralSkill name the explicit fallback returned
// when no keyword matches anything.
const (
	GeneralCategory = "General"
	GeneralSkill    = "General fresher stack"
)

// DefaultTables returns the built-in six-category taxonomy.
func DefaultTables() Tables {
	return Tables{Categories: []Category{
		{Name: "Core CS", Keywords: []Keyword{
			{"dsa", "DSA"}, {"data structures", "Data Structures"}, {"algorithms", "Algorithms"},
			{"oop", "OOP"}, {"object oriented", "OOP"}, {"dbms", "DBMS"},
			{"database management", "DBMS"}, {"os", "OS"}, {"operating system", "OS"},
			{"networks", "Networks"}, {"networking", "Networks"}, {"computer networks", "Networks"},
		}},
		{Name: "Languages", Keywords: []Keyword{
			{"java", "Java"}, {"python", "Python"}, {"javascript", "JavaScript"},
			{"typescript", "TypeScript"}, {"c++", "C++"}, {"c#", "C#"},
			{"golang", "Go"}, {"go lang", "Go"},
		}},
		{Name: "Web", Keywords: []Keyword{
			{"react", "React"}, {"next.js", "Next.js"}, {"nextjs", "Next.js"},
			{"node.js", "Node.js"}, {"nodejs", "Node.js"}, {"express", "Express"},
			{"rest", "REST"}, {"restful", "REST"}, {"graphql", "GraphQL"},
			{"angular", "Angular"}, {"vue", "Vue"}, {"html", "HTML"},
			{"css", "CSS"}, {"tailwind", "Tailwind"},
		}},
		{Name: "Data", Keywords: []Keyword{
			{"sql", "SQL"}, {"mongodb", "MongoDB"}, {"postgresql", "PostgreSQL"},
			{"mysql", "MySQL"}, {"redis", "Redis"}, {"nosql", "NoSQL"},
			{"database", "Database"},
		}},
		{Name: "Cloud/DevOps", Keywords: []Keyword{
			{"aws", "AWS"}, {"azure", "Azure"}, {"gcp", "GCP"},
			{"docker", "Docker"}, {"kubernetes", "Kubernetes"},
			{"ci/cd", "CI/CD"}, {"cicd", "CI/CD"}, {"linux", "Linux"},
			{"devops", "DevOps"}, {"terraform", "Terraform"}, {"jenkins", "Jenkins"},
		}},
		{Name: "Testing", Keywords: []Keyword{
			{"selenium", "Selenium"}, {"cypress", "Cypress"}, {"playwright", "Playwright"},
			{"junit", "JUnit"}, {"pytest", "PyTest"}, {"testing", "Testing"},
			{"unit test", "Unit Testing"}, {"integration test", "Integration Testing"},
		}},
	}}
}

// LoadTablesFile reads a YAML override of the skill tables.
// The file replaces the built-in taxonomy wholesale.
func LoadTablesFile(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read skills file: %w", err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("parse skills file: %w", err)
	}
	if len(t.Categories) == 0 {
		return Tables{}, fmt.Errorf("skills file %s defines no categories", path)
	}
	for _, c := range t.Categories {
		if c.Name == "" {
			return Tables{}, fmt.Errorf("skills file %s has a category without a name", path)
		}
		if len(c.Keywords) == 0 {
			return Tables{}, fmt.Errorf("category %s has no keywords", c.Name)
		}
	}
	return t, nil
}
