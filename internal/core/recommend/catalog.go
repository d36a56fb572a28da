package recommend

// Domain is one career category in the static catalog
type Domain struct {
	Name       string
	Keywords   []string
	Boosts     []string
	BaseReason string
}

// declaration order doubles as the tie-break order when scores are equal
var defaultCatalog = []Domain{
	{
		Name:       "Data Science",
		BaseReason: "analytical mindset with Python/SQL and data tooling",
		Keywords:   []string{"python", "pandas", "numpy", "statistics", "ml", "data", "sql", "visualization", "notebook"},
		Boosts:     []string{"data", "analytics", "bi"},
	},
	{
		Name:       "AI/ML Engineering",
		BaseReason: "model building and ML frameworks",
		Keywords:   []string{"ml", "machine learning", "ai", "pytorch", "tensorflow", "llm", "huggingface"},
		Boosts:     []string{"ai/ml", "mlops"},
	},
	{
		Name:       "Frontend Engineering",
		BaseReason: "UI/UX focus with JavaScript, React, and CSS",
		Keywords:   []string{"react", "javascript", "typescript", "css", "ui", "design", "tailwind", "next"},
		Boosts:     []string{"frontend", "web", "ui"},
	},
	{
		Name:       "Backend Engineering",
		BaseReason: "API/database strengths with Node and SQL",
		Keywords:   []string{"node", "express", "api", "database", "postgres", "sql", "prisma", "auth"},
		Boosts:     []string{"backend", "api", "server"},
	},
	{
		Name:       "Full Stack Engineering",
		BaseReason: "end‑to‑end product building across frontend and backend",
		Keywords:   []string{"fullstack", "full stack", "react", "node", "next", "api", "sql"},
		Boosts:     []string{"full stack", "software engineer"},
	},
	{
		Name:       "Mobile Development",
		BaseReason: "building native or cross‑platform mobile apps",
		Keywords:   []string{"ios", "android", "swift", "kotlin", "flutter", "react native"},
		Boosts:     []string{"mobile", "app"},
	},
	{
		Name:       "SRE",
		BaseReason: "reliability, monitoring, and incident response",
		Keywords:   []string{"sre", "observability", "prometheus", "grafana", "alerts", "oncall", "reliability"},
		Boosts:     []string{"sre", "reliability"},
	},
	{
		Name:       "Cybersecurity",
		BaseReason: "security mindset and defensive tooling",
		Keywords:   []string{"security", "siem", "soc", "threat", "vulnerability", "owasp", "splunk", "mitre"},
		Boosts:     []string{"security", "blue team", "red team"},
	},
	{
		Name:       "Cloud/DevOps",
		BaseReason: "cloud platforms and automation (CI/CD)",
		Keywords:   []string{"aws", "gcp", "azure", "docker", "kubernetes", "devops", "terraform", "ci/cd"},
		Boosts:     []string{"cloud/devops", "sre"},
	},
	{
		Name:       "UI/UX Design",
		BaseReason: "designing usable, accessible interfaces",
		Keywords:   []string{"ui", "ux", "figma", "prototyping", "wireframe", "design", "research"},
		Boosts:     []string{"design", "ui/ux"},
	},
	{
		Name:       "Product Management",
		BaseReason: "product thinking and stakeholder collaboration",
		Keywords:   []string{"product", "roadmap", "stakeholder", "communication", "analytics", "experimentation"},
		Boosts:     []string{"product", "pm"},
	},
	{
		Name:       "QA/Test",
		BaseReason: "quality assurance and test automation",
		Keywords:   []string{"test", "automation", "qa", "selenium", "cypress", "playwright"},
		Boosts:     []string{"qa", "testing"},
	},
	{
		Name:       "Game Development",
		BaseReason: "interactive experiences and engines",
		Keywords:   []string{"unity", "unreal", "godot", "game", "shader"},
		Boosts:     []string{"game"},
	},
	{
		Name:       "Embedded Systems",
		BaseReason: "firmware and hardware‑software integration",
		Keywords:   []string{"embedded", "firmware", "rtos", "mcu", "c", "c++"},
		Boosts:     []string{"embedded", "firmware"},
	},
	{
		Name:       "Blockchain",
		BaseReason: "smart contracts and distributed systems",
		Keywords:   []string{"solidity", "ethereum", "web3", "smart contract", "defi"},
		Boosts:     []string{"blockchain", "web3"},
	},
	{
		Name:       "Database Administration",
		BaseReason: "operating and tuning database systems",
		Keywords:   []string{"postgres", "mysql", "oracle", "backup", "replication", "index"},
		Boosts:     []string{"dba", "database"},
	},
	{
		Name:       "Solutions/Systems Architecture",
		BaseReason: "systems design, scalability, and architecture",
		Keywords:   []string{"architecture", "scalability", "design patterns", "high availability", "diagram"},
		Boosts:     []string{"architect", "solutions"},
	},
	{
		Name:       "Technical Writing",
		BaseReason: "creating clear technical documentation",
		Keywords:   []string{"documentation", "write", "tutorial", "docs"},
		Boosts:     []string{"technical writer", "docs"},
	},
}

// canonical skills in gap-reporting order
var defaultSkills = []string{
	"python",
	"sql",
	"statistics",
	"react",
	"typescript",
	"node",
	"api design",
	"cloud",
	"docker",
	"ml fundamentals",
	"data visualization",
	"testing",
}

// StepType classifies a learning path entry
type StepType string

const (
	// StepCourse is a structured course
	StepCourse StepType = "course"
	// StepArticle is a single read
	StepArticle StepType = "article"
	// StepProject is a hands-on build
	StepProject StepType = "project"
)

// Step is a single learning path entry
type Step struct {
	Title string   `json:"title"         example:"The Missing Semester of CS (MIT)"`
	Type  StepType `json:"type"          example:"course"`
	URL   string   `json:"url,omitempty" example:"https://missing.csail.mit.edu/"`
}

// identical for every response
var learningPath = []Step{
	{Title: "Build a portfolio project in your target domain", Type: StepProject},
	{Title: "FreeCodeCamp: JavaScript Algorithms and Data Structures", Type: StepCourse, URL: "https://www.freecodecamp.org/learn"},
	{Title: "The Missing Semester of CS (MIT)", Type: StepCourse, URL: "https://missing.csail.mit.edu/"},
}

// Catalog returns a copy of the built-in domain catalog
func Catalog() []Domain { return cloneDomains(defaultCatalog) }

// CanonicalSkills returns a copy of the canonical skill list
func CanonicalSkills() []string { return append([]string(nil), defaultSkills...) }

// LearningPath returns a copy of the static learning path
func LearningPath() []Step { return append([]Step(nil), learningPath...) }

func cloneDomains(in []Domain) []Domain {
	out := make([]Domain, len(in))
	for i, d := range in {
		out[i] = Domain{
			Name:       d.Name,
			Keywords:   append([]string(nil), d.Keywords...),
			Boosts:     append([]string(nil), d.Boosts...),
			BaseReason: d.BaseReason,
		}
	}
	return out
}
