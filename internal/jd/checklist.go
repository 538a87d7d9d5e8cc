package jd

import "github.com/blockedby/careerdesk-os/internal/models"

// Round titles are fixed; rounds 2 and 3 grow skill-specific items.
const (
	maxRoundItems = 8
	minRoundItems = 7
)

// GenerateChecklist builds the four-round preparation checklist.
// Rounds 2 and 3 start from a base list, append one item per detected
// skill family, pad with filler when short, and truncate to eight items.
func GenerateChecklist(skills map[string][]string) []models.ChecklistRound {
	all := allSkills(skills)
	has := func(kw string) bool { return hasSkill(all, kw) }

	round1 := []string{
		"Review quantitative aptitude basics",
		"Practice logical reasoning (15 questions)",
		"Verbal ability — reading comprehension",
		"Review basic probability & statistics",
		"Time management strategy for aptitude rounds",
	}

	round2 := []string{
		"Revise arrays, strings, and hashing",
		"Practice 5 medium-level DSA problems",
		"Review time & space complexity analysis",
	}
	if has("OOP") {
		round2 = append(round2, "Revise OOP principles: encapsulation, inheritance, polymorphism")
	}
	if has("DBMS") || has("SQL") {
		round2 = append(round2, "Review normalization, joins, and indexing")
	}
	if has("OS") {
		round2 = append(round2, "Revise process scheduling, deadlocks, and memory management")
	}
	if has("Networks") {
		round2 = append(round2, "Review OSI model, TCP/IP, and HTTP")
	}
	if len(round2) < minRoundItems {
		round2 = append(round2,
			"Practice 2 hard-level coding problems",
			"Review recursion and backtracking")
	}

	round3 := []string{
		"Prepare 2-minute project walkthrough",
		"Be ready to explain architecture decisions",
	}
	if has("React") || has("Next.js") || has("Angular") || has("Vue") {
		round3 = append(round3, "Review component lifecycle and state management")
	}
	if has("Node.js") || has("Express") {
		round3 = append(round3, "Review REST API design and middleware patterns")
	}
	if has("Docker") || has("Kubernetes") {
		round3 = append(round3, "Explain containerization and orchestration concepts")
	}
	if has("AWS") || has("Azure") || has("GCP") {
		round3 = append(round3, "Review cloud services you've used in projects")
	}
	if has("SQL") || has("MongoDB") || has("PostgreSQL") {
		round3 = append(round3, "Be ready to write queries and explain schema design")
	}
	if has("Python") {
		round3 = append(round3, "Review Python-specific patterns and libraries")
	}
	if has("Java") {
		round3 = append(round3, "Review Java collections, multithreading basics")
	}
	if len(round3) < minRoundItems {
		round3 = append(round3,
			"Prepare to discuss your strongest project in depth",
			"Review system design basics")
	}

	round4 := []string{
		"Prepare 'Tell me about yourself' (90 seconds)",
		"Research the company's mission and recent news",
		"Prepare 'Why this company?' with specific reasons",
		"Prepare strengths & weaknesses with examples",
		"Practice behavioral questions using STAR method",
		"Prepare salary expectation response",
		"Have 2–3 thoughtful questions for the interviewer",
	}

	return []models.ChecklistRound{
		{Title: "Round 1 — Aptitude & Basics", Items: round1},
		{Title: "Round 2 — DSA & Core CS", Items: truncate(round2, maxRoundItems)},
		{Title: "Round 3 — Technical Interview", Items: truncate(round3, maxRoundItems)},
		{Title: "Round 4 — HR & Managerial", Items: round4},
	}
}

// GeneratePlan builds the 7-day study plan. Day and focus labels are
// fixed; a few tasks switch on detected skills.
func GeneratePlan(skills map[string][]string) []models.DayPlan {
	all := allSkills(skills)
	has := func(kw string) bool { return hasSkill(all, kw) }

	networksTask := "Review basic networking concepts"
	if has("Networks") {
		networksTask = "Networks: OSI layers, TCP vs UDP"
	}

	languageTask := "Practice in your preferred language"
	switch {
	case has("Java"):
		languageTask = "Practice coding in Java"
	case has("Python"):
		languageTask = "Practice coding in Python"
	}

	frontendTask := "Align tech stack with JD requirements"
	if has("React") || has("Next.js") {
		frontendTask = "Review React/frontend patterns used in projects"
	}

	backendTask := "Prepare to discuss any backend experience"
	if has("Node.js") || has("Express") {
		backendTask = "Review backend APIs you've built"
	}

	sqlTask := "Review database concepts for interviews"
	if has("SQL") {
		sqlTask = "Practice SQL query-based interview questions"
	}

	devopsTask := "Review system design basics"
	if has("Docker") || has("AWS") {
		devopsTask = "Prepare DevOps/cloud interview talking points"
	}

	return []models.DayPlan{
		{
			Day:   "Day 1–2",
			Focus: "Basics & Core CS",
			Tasks: []string{
				"Review OOP fundamentals with examples",
				"Revise DBMS: normalization, ACID properties",
				"OS: process management, scheduling algorithms",
				networksTask,
				"Practice 10 aptitude questions",
			},
		},
		{
			Day:   "Day 3–4",
			Focus: "DSA & Coding Practice",
			Tasks: []string{
				"Arrays & strings: sliding window, two pointers",
				"Trees & graphs: BFS, DFS, shortest path",
				"Dynamic programming: top 10 patterns",
				languageTask,
				"Solve 3 medium problems on each topic",
			},
		},
		{
			Day:   "Day 5",
			Focus: "Project & Resume Alignment",
			Tasks: []string{
				"Review all projects on your resume",
				"Prepare architecture explanations for each project",
				frontendTask,
				backendTask,
				"Ensure resume matches JD keywords",
			},
		},
		{
			Day:   "Day 6",
			Focus: "Mock Interview Questions",
			Tasks: []string{
				"Practice 'Tell me about yourself'",
				"Answer 5 behavioral questions (STAR method)",
				sqlTask,
				devopsTask,
				"Do one full mock interview (45 min)",
			},
		},
		{
			Day:   "Day 7",
			Focus: "Revision & Weak Areas",
			Tasks: []string{
				"Revisit problems you got wrong",
				"Review all checklist items marked incomplete",
				"Quick-revise core CS formulas and definitions",
				"Relax — avoid cramming, trust your preparation",
				"Prepare logistics: interview time, documents, setup",
			},
		},
	}
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
