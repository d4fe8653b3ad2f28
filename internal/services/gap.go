package services

const (
	maxMissingSkills = 5
	maxFutureSkills  = 3
)

// Table order encodes importance, so lists stay in authored order rather
// than alphabetical.
var requiredSkillsByJob = map[string][]string{
	"Data Scientist":            {"Python", "Machine Learning", "SQL", "Pandas", "Tableau"},
	"Data Analyst":              {"SQL", "Excel", "Data Analysis", "Tableau", "Python"},
	"Machine Learning Engineer": {"Python", "TensorFlow", "PyTorch", "Machine Learning", "Docker", "MLOps"},
	"Software Engineer":         {"Java", "Python", "SQL", "Git", "Data Structures", "System Design"},
	"Frontend Developer":        {"JavaScript", "React", "HTML", "CSS", "Git", "TypeScript"},
	"Backend Developer":         {"Java", "Node.js", "SQL", "Docker", "REST APIs", "Git"},
	"DevOps Engineer":           {"Docker", "Kubernetes", "AWS", "Git", "Linux", "Terraform"},
}

var futureSkillsByJob = map[string][]string{
	"Data Scientist":            {"MLOps", "Cloud Data Warehousing", "LLM Fine-tuning"},
	"Data Analyst":              {"Advanced R", "Cloud Data Warehousing", "MLOps"},
	"Machine Learning Engineer": {"LLM Fine-tuning", "Vector Databases", "Model Serving"},
	"Software Engineer":         {"Go Language", "Microservices Architecture", "Advanced Kubernetes"},
	"Frontend Developer":        {"WebAssembly", "Server Components", "Edge Rendering"},
	"Backend Developer":         {"Go Language", "Microservices Architecture", "Event Streaming"},
	"DevOps Engineer":           {"Platform Engineering", "GitOps", "eBPF Observability"},
}

var (
	defaultRequiredSkills = []string{"Communication", "Problem Solving"}
	defaultFutureSkills   = []string{"Cloud Computing", "AI Tools"}
)

type GapAnalyzer interface {
	Analyze(recommendedJob string, skills []string) (missing []string, future []string)
}

type gapAnalyzer struct{}

func NewGapAnalyzer() GapAnalyzer {
	return &gapAnalyzer{}
}

// Analyze returns the required skills the candidate lacks for the recommended
// job, plus forward-looking suggestions. Unknown job labels fall back to a
// generic default list.
func (g *gapAnalyzer) Analyze(recommendedJob string, skills []string) ([]string, []string) {
	required, ok := requiredSkillsByJob[recommendedJob]
	if !ok {
		required = defaultRequiredSkills
	}

	future, ok := futureSkillsByJob[recommendedJob]
	if !ok {
		future = defaultFutureSkills
	}

	missing := make([]string, 0, maxMissingSkills)
	for _, req := range required {
		if HasSkill(skills, req) {
			continue
		}
		missing = append(missing, req)
		if len(missing) == maxMissingSkills {
			break
		}
	}

	if len(future) > maxFutureSkills {
		future = future[:maxFutureSkills]
	}

	return missing, future
}
