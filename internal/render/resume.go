// Package render produces the plain-text export formats used for
// clipboard and email.
package render

import (
	"fmt"
	"strings"

	"github.com/blockedby/careerdesk-os/internal/models"
)

// ResumeText renders the resume as section-ordered plain text. Empty
// sections are omitted entirely; a fully empty resume renders as "".
func ResumeText(data models.ResumeData) string {
	var lines []string

	if data.Personal.Name != "" {
		lines = append(lines, data.Personal.Name)
	}
	contact := joinNonEmpty(" | ", data.Personal.Email, data.Personal.Phone, data.Personal.Location)
	if contact != "" {
		lines = append(lines, contact)
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	if data.Summary != "" {
		lines = append(lines, "SUMMARY", data.Summary, "")
	}

	if len(data.Experience) > 0 {
		lines = append(lines, "EXPERIENCE")
		for _, exp := range data.Experience {
			title := joinNonEmpty(" — ", exp.Role, exp.Company)
			if dates := joinNonEmpty(" – ", exp.StartDate, exp.EndDate); dates != "" {
				title += "  (" + dates + ")"
			}
			lines = append(lines, title)
			if exp.Description != "" {
				lines = append(lines, exp.Description)
			}
			lines = append(lines, "")
		}
	}

	if len(data.Education) > 0 {
		lines = append(lines, "EDUCATION")
		for _, edu := range data.Education {
			line := joinNonEmpty(" in ", edu.Degree, edu.Field)
			if edu.Institution != "" {
				line += " — " + edu.Institution
			}
			if dates := joinNonEmpty(" – ", edu.StartYear, edu.EndYear); dates != "" {
				line += "  (" + dates + ")"
			}
			lines = append(lines, line)
		}
		lines = append(lines, "")
	}

	if len(data.Projects) > 0 {
		lines = append(lines, "PROJECTS")
		for _, proj := range data.Projects {
			line := proj.Title
			if len(proj.TechStack) > 0 {
				line += "  [" + strings.Join(proj.TechStack, ", ") + "]"
			}
			lines = append(lines, line)
			if proj.Description != "" {
				lines = append(lines, proj.Description)
			}
			if proj.LiveURL != "" {
				lines = append(lines, "Live: "+proj.LiveURL)
			}
			if proj.GithubURL != "" {
				lines = append(lines, "GitHub: "+proj.GithubURL)
			}
			lines = append(lines, "")
		}
	}

	if len(data.Skills.Flatten()) > 0 {
		lines = append(lines, "SKILLS")
		if len(data.Skills.Technical) > 0 {
			lines = append(lines, "Technical: "+strings.Join(data.Skills.Technical, ", "))
		}
		if len(data.Skills.Soft) > 0 {
			lines = append(lines, "Soft Skills: "+strings.Join(data.Skills.Soft, ", "))
		}
		if len(data.Skills.Tools) > 0 {
			lines = append(lines, "Tools: "+strings.Join(data.Skills.Tools, ", "))
		}
		lines = append(lines, "")
	}

	if data.Links.Github != "" || data.Links.Linkedin != "" {
		lines = append(lines, "LINKS")
		if data.Links.Github != "" {
			lines = append(lines, "GitHub: "+data.Links.Github)
		}
		if data.Links.Linkedin != "" {
			lines = append(lines, "LinkedIn: "+data.Links.Linkedin)
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// DigestText renders a digest as a numbered plain-text shortlist.
func DigestText(d models.Digest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job digest for %s\n", d.Date)

	if len(d.Entries) == 0 {
		b.WriteString("No matching jobs today.\n")
		return strings.TrimSpace(b.String())
	}

	for i, e := range d.Entries {
		fmt.Fprintf(&b, "\n%d. %s at %s (%d%% match)\n", i+1, e.Title, e.Company, e.Score)
		fmt.Fprintf(&b, "   %s | %s | %s | posted %s\n", e.Location, e.Mode, e.Source, daysAgo(e.PostedDaysAgo))
		if e.ApplyURL != "" {
			fmt.Fprintf(&b, "   Apply: %s\n", e.ApplyURL)
		}
	}
	return strings.TrimSpace(b.String())
}

// SubmissionText renders the final proof-of-work submission for
// clipboard use. Missing links render as "(not provided)".
func SubmissionText(links models.ArtifactLinks) string {
	orNotProvided := func(s string) string {
		if s == "" {
			return "(not provided)"
		}
		return s
	}

	var b strings.Builder
	b.WriteString("AI Resume Builder — Final Submission\n\n")
	fmt.Fprintf(&b, "Lovable Project:\n%s\n\n", orNotProvided(links.Lovable))
	fmt.Fprintf(&b, "GitHub Repository:\n%s\n\n", orNotProvided(links.Github))
	fmt.Fprintf(&b, "Live Deployment:\n%s\n\n", orNotProvided(links.Deployed))
	b.WriteString("Core Capabilities:\n")
	b.WriteString("- Structured resume builder with live preview\n")
	b.WriteString("- Sample data loading\n")
	b.WriteString("- Multiple sections (education, experience, projects, skills)\n")
	b.WriteString("- Clean, ATS-friendly preview layout\n")
	b.WriteString("- Persistent storage")
	return b.String()
}

func daysAgo(n int) string {
	switch n {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", n)
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
