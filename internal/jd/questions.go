package jd

// maxQuestions caps the generated interview question list.
const maxQuestions = 10

// questionBank maps display-cased skills to their canned questions.
// Skills without an entry contribute nothing; the General bank backfills.
var questionBank = map[string][]string{
	"DSA": {
		"How would you optimize search in a sorted array?",
		"Explain the difference between BFS and DFS with use cases.",
		"What is dynamic programming? Walk through a classic example.",
	},
	"Data Structures": {
		"Compare arrays vs linked lists for different operations.",
		"When would you use a hash map over a tree map?",
	},
	"Algorithms": {
		"Explain time complexity of merge sort vs quick sort.",
		"How does Dijkstra's algorithm work?",
	},
	"OOP": {
		"Explain SOLID principles with examples.",
		"What is the difference between composition and inheritance?",
	},
	"DBMS": {
		"Explain normalization up to 3NF with an example.",
		"What are ACID properties in a database?",
	},
	"SQL": {
		"Explain indexing and when it helps query performance.",
		"Write a query to find the second highest salary.",
	},
	"OS": {
		"Explain deadlock: conditions and prevention strategies.",
		"What is virtual memory and how does paging work?",
	},
	"Networks": {
		"Explain the TCP 3-way handshake.",
		"What happens when you type a URL in the browser?",
	},
	"React": {
		"Explain state management options in React.",
		"What are React hooks? When would you use useEffect vs useMemo?",
	},
	"Next.js": {
		"Explain SSR vs SSG in Next.js.",
		"How does Next.js handle routing differently from React Router?",
	},
	"Node.js": {
		"Explain the event loop in Node.js.",
		"How would you handle errors in an Express middleware chain?",
	},
	"Java": {
		"Explain the difference between HashMap and ConcurrentHashMap.",
		"What is the Java Memory Model?",
	},
	"Python": {
		"Explain list comprehensions and generator expressions.",
		"What is the GIL and how does it affect multithreading?",
	},
	"JavaScript": {
		"Explain closures with a practical example.",
		"What is the difference between var, let, and const?",
	},
	"TypeScript": {
		"How do generics improve type safety in TypeScript?",
		"Explain the difference between interface and type.",
	},
	"Docker": {
		"Explain Docker layers and how caching works.",
		"What is the difference between CMD and ENTRYPOINT?",
	},
	"Kubernetes": {
		"Explain Pods, Services, and Deployments in Kubernetes.",
	},
	"AWS": {
		"Compare EC2, Lambda, and ECS for deploying applications.",
		"What is the difference between S3 and EBS?",
	},
	"MongoDB": {
		"When would you choose MongoDB over a relational database?",
		"Explain MongoDB indexing strategies.",
	},
	"REST": {
		"Explain RESTful API design principles.",
		"What is the difference between PUT and PATCH?",
	},
	"GraphQL": {
		"How does GraphQL differ from REST? What are its trade-offs?",
	},
	"CI/CD": {
		"Describe a CI/CD pipeline you would set up for a web app.",
	},
	"Testing": {
		"What is the testing pyramid? Explain each level.",
		"How do you decide what to unit test vs integration test?",
	},
	GeneralSkill: {
		"What programming languages are you most comfortable with?",
		"Describe a project you've built from scratch.",
		"How do you approach debugging a problem you've never seen before?",
		"What is version control and why is it important?",
		"Explain the difference between stack and heap memory.",
	},
}

// OrderedSkills flattens the extracted map into skill-detection order:
// categories in table order, skills in keyword order within each.
func (a *Analyzer) OrderedSkills(skills map[string][]string) []string {
	var out []string
	for _, name := range a.CategoryOrder() {
		out = append(out, skills[name]...)
	}
	return out
}

// GenerateQuestions pulls up to ten deduplicated questions in
// skill-detection order, backfilled from the General bank. Never padded
// past what the banks hold.
func (a *Analyzer) GenerateQuestions(skills map[string][]string) []string {
	questions := make([]string, 0, maxQuestions)
	seen := map[string]bool{}

	add := func(q string) bool {
		if !seen[q] {
			seen[q] = true
			questions = append(questions, q)
		}
		return len(questions) >= maxQuestions
	}

	for _, skill := range a.OrderedSkills(skills) {
		for _, q := range questionBank[skill] {
			if add(q) {
				return questions
			}
		}
	}

	for _, q := range questionBank[GeneralSkill] {
		if add(q) {
			break
		}
	}

	return questions
}
