// Package skilldict holds the fixed, versioned skill dictionary used by the
// Skill Extractor (C4): canonical names, aliases, categories, regex
// patterns, contextual trigger phrases, certification patterns, and a
// learning-resource table. It is built once at package init and never
// mutated afterward, making it safe to share across concurrent evaluations
// (the "immutable singleton" pattern of §9).
package skilldict

import (
	"regexp"
	"strings"

	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
)

// Version identifies the dictionary revision, bumped whenever entries change.
const Version = "2026.1"

// Entry is one canonical skill with its category and known aliases.
type Entry struct {
	Name     string
	Category domain.SkillCategory
	Aliases  []string
}

// Dictionary is the fixed table of canonical skills. Category share follows
// §3's eight buckets.
var Dictionary = []Entry{
	// programming_languages
	{"Go", domain.CategoryProgrammingLanguages, []string{"golang"}},
	{"Python", domain.CategoryProgrammingLanguages, nil},
	{"Java", domain.CategoryProgrammingLanguages, nil},
	{"JavaScript", domain.CategoryProgrammingLanguages, []string{"js", "ecmascript"}},
	{"TypeScript", domain.CategoryProgrammingLanguages, []string{"ts"}},
	{"C++", domain.CategoryProgrammingLanguages, []string{"cpp", "c plus plus"}},
	{"C#", domain.CategoryProgrammingLanguages, []string{"csharp", "c sharp"}},
	{"Ruby", domain.CategoryProgrammingLanguages, nil},
	{"Rust", domain.CategoryProgrammingLanguages, nil},
	{"Kotlin", domain.CategoryProgrammingLanguages, nil},
	{"Swift", domain.CategoryProgrammingLanguages, nil},
	{"PHP", domain.CategoryProgrammingLanguages, nil},
	{"Scala", domain.CategoryProgrammingLanguages, nil},
	{"C", domain.CategoryProgrammingLanguages, nil},

	// web_technologies
	{"React", domain.CategoryWebTechnologies, []string{"reactjs", "react.js"}},
	{"Angular", domain.CategoryWebTechnologies, []string{"angularjs"}},
	{"Vue.js", domain.CategoryWebTechnologies, []string{"vue", "vuejs"}},
	{"Node.js", domain.CategoryWebTechnologies, []string{"nodejs", "node"}},
	{"Django", domain.CategoryWebTechnologies, nil},
	{"Flask", domain.CategoryWebTechnologies, nil},
	{"Spring Boot", domain.CategoryWebTechnologies, []string{"spring", "springboot"}},
	{"Express.js", domain.CategoryWebTechnologies, []string{"express", "expressjs"}},
	{"GraphQL", domain.CategoryWebTechnologies, nil},
	{"REST API", domain.CategoryWebTechnologies, []string{"rest", "restful", "restful api"}},
	{"HTML", domain.CategoryWebTechnologies, []string{"html5"}},
	{"CSS", domain.CategoryWebTechnologies, []string{"css3"}},

	// databases
	{"PostgreSQL", domain.CategoryDatabases, []string{"postgres", "psql"}},
	{"MySQL", domain.CategoryDatabases, nil},
	{"MongoDB", domain.CategoryDatabases, []string{"mongo"}},
	{"Redis", domain.CategoryDatabases, nil},
	{"Elasticsearch", domain.CategoryDatabases, []string{"elastic search"}},
	{"Cassandra", domain.CategoryDatabases, nil},
	{"DynamoDB", domain.CategoryDatabases, nil},
	{"SQLite", domain.CategoryDatabases, nil},
	{"SQL", domain.CategoryDatabases, nil},

	// cloud_platforms
	{"AWS", domain.CategoryCloudPlatforms, []string{"amazon web services"}},
	{"Azure", domain.CategoryCloudPlatforms, []string{"microsoft azure"}},
	{"GCP", domain.CategoryCloudPlatforms, []string{"google cloud", "google cloud platform"}},
	{"DigitalOcean", domain.CategoryCloudPlatforms, nil},
	{"Heroku", domain.CategoryCloudPlatforms, nil},

	// data_science
	{"Machine Learning", domain.CategoryDataScience, []string{"ml"}},
	{"Deep Learning", domain.CategoryDataScience, []string{"dl"}},
	{"TensorFlow", domain.CategoryDataScience, nil},
	{"PyTorch", domain.CategoryDataScience, nil},
	{"scikit-learn", domain.CategoryDataScience, []string{"sklearn"}},
	{"Pandas", domain.CategoryDataScience, nil},
	{"NumPy", domain.CategoryDataScience, nil},
	{"NLP", domain.CategoryDataScience, []string{"natural language processing"}},
	{"Computer Vision", domain.CategoryDataScience, []string{"cv"}},

	// mobile_development
	{"iOS", domain.CategoryMobileDevelopment, nil},
	{"Android", domain.CategoryMobileDevelopment, nil},
	{"React Native", domain.CategoryMobileDevelopment, nil},
	{"Flutter", domain.CategoryMobileDevelopment, nil},
	{"SwiftUI", domain.CategoryMobileDevelopment, nil},

	// devops_tools
	{"Docker", domain.CategoryDevOpsTools, nil},
	{"Kubernetes", domain.CategoryDevOpsTools, []string{"k8s"}},
	{"Terraform", domain.CategoryDevOpsTools, nil},
	{"Ansible", domain.CategoryDevOpsTools, nil},
	{"Jenkins", domain.CategoryDevOpsTools, nil},
	{"GitHub Actions", domain.CategoryDevOpsTools, nil},
	{"CI/CD", domain.CategoryDevOpsTools, []string{"ci cd", "continuous integration"}},
	{"Prometheus", domain.CategoryDevOpsTools, nil},
	{"Grafana", domain.CategoryDevOpsTools, nil},
	{"Git", domain.CategoryDevOpsTools, nil},

	// soft_skills
	{"Leadership", domain.CategorySoftSkills, nil},
	{"Communication", domain.CategorySoftSkills, nil},
	{"Teamwork", domain.CategorySoftSkills, []string{"collaboration"}},
	{"Problem Solving", domain.CategorySoftSkills, nil},
	{"Adaptability", domain.CategorySoftSkills, nil},
	{"Time Management", domain.CategorySoftSkills, nil},
	{"Critical Thinking", domain.CategorySoftSkills, nil},
	{"Mentoring", domain.CategorySoftSkills, []string{"mentorship"}},
}

// reverseLookup maps every lowercase alias (and lowercase canonical name) to
// its dictionary entry, giving O(1) resolution of a single term via Lookup.
var reverseLookup map[string]Entry

func init() {
	reverseLookup = make(map[string]Entry, len(Dictionary)*2)
	for _, e := range Dictionary {
		reverseLookup[strings.ToLower(e.Name)] = e
		for _, a := range e.Aliases {
			reverseLookup[strings.ToLower(a)] = e
		}
	}
}

// Lookup resolves a lowercase-insensitive term to its canonical entry.
func Lookup(term string) (Entry, bool) {
	e, ok := reverseLookup[strings.ToLower(strings.TrimSpace(term))]
	return e, ok
}

// All returns every dictionary entry.
func All() []Entry {
	return Dictionary
}

// Bucket maps a skill category to the SkillProfile bucket it belongs in,
// per §4.4's categorization table.
func Bucket(cat domain.SkillCategory) domain.SkillBucket {
	switch cat {
	case domain.CategorySoftSkills:
		return domain.BucketSoft
	case domain.CategoryCloudPlatforms, domain.CategoryDevOpsTools:
		return domain.BucketTools
	case domain.CategoryDataScience, domain.CategoryMobileDevelopment:
		return domain.BucketDomain
	default:
		return domain.BucketTechnical
	}
}

// RegexSkill is one regex-pattern strategy entry (§4.4 "Regex patterns").
type RegexSkill struct {
	Name       string
	Category   domain.SkillCategory
	Pattern    *regexp.Regexp
	Confidence float64
}

// RegexPatterns covers surface forms the dictionary's substring match can
// miss (punctuation-heavy names) at the base confidences specified in
// §4.4: 0.90 for languages, 0.85 for frameworks.
var RegexPatterns = []RegexSkill{
	{"C++", domain.CategoryProgrammingLanguages, regexp.MustCompile(`(?i)\bc\+\+`), 0.90},
	{"C#", domain.CategoryProgrammingLanguages, regexp.MustCompile(`(?i)\bc#`), 0.90},
	{".NET", domain.CategoryWebTechnologies, regexp.MustCompile(`(?i)\.net\b`), 0.85},
	{"Node.js", domain.CategoryWebTechnologies, regexp.MustCompile(`(?i)\bnode\.js\b`), 0.85},
	{"Vue.js", domain.CategoryWebTechnologies, regexp.MustCompile(`(?i)\bvue\.js\b`), 0.85},
	{"Express.js", domain.CategoryWebTechnologies, regexp.MustCompile(`(?i)\bexpress\.js\b`), 0.85},
	{"CI/CD", domain.CategoryDevOpsTools, regexp.MustCompile(`(?i)\bci\s*/\s*cd\b`), 0.85},
	{"scikit-learn", domain.CategoryDataScience, regexp.MustCompile(`(?i)\bscikit-learn\b`), 0.85},
}

// ContextualTriggers are the lead-in phrases the contextual strategy splits
// on (§4.4 "Contextual").
var ContextualTriggers = []string{
	"experience with",
	"proficient in",
	"skilled in",
	"expertise in",
	"technologies:",
	"built with:",
	"worked with",
}

// SectionKeywords map section kind -> header keywords (case-insensitive),
// shared by the resume/job section detectors (§4.2/§4.3) and by C4's
// skills-section-proximity confidence boost.
var SectionKeywords = map[string][]string{
	"summary":         {"summary", "objective", "profile"},
	"skills":          {"skills", "technical skills", "technologies"},
	"experience":      {"experience", "employment", "work history"},
	"education":       {"education", "academic"},
	"projects":        {"projects"},
	"certifications":  {"certifications", "licenses"},
	"languages":       {"languages"},
	"awards":          {"awards", "honors"},
	"responsibilities": {"responsibilities", "duties", "what you'll do"},
	"requirements":    {"requirements", "qualifications", "required qualifications"},
	"preferred":       {"preferred", "nice to have", "bonus", "preferred qualifications"},
	"benefits":        {"benefits", "perks", "what we offer"},
}

// CertificationPatterns recognize certification mentions per §4.4.
var CertificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(AWS|Azure|GCP)\s+Certified\s+[A-Za-z ]+`),
	regexp.MustCompile(`(?i)\b(PMP|CISSP|CISM|CISA)\b`),
	regexp.MustCompile(`(?i)\b(Certified\s+)?(Scrum Master|Product Owner|Agile)\b`),
	regexp.MustCompile(`(?i)\b(Oracle|Microsoft|Cisco|CompTIA)\s+[A-Za-z0-9+ ]+?\s*(Certified|Certification)\b`),
}

// LearningResources maps a skill name to a fixed learning-resource pointer,
// used by the Feedback Synthesizer's (C7) skill-gap analysis.
var LearningResources = map[string]string{
	"Python":        "Python official tutorial (docs.python.org/3/tutorial)",
	"Go":            "A Tour of Go (go.dev/tour)",
	"React":         "React official docs (react.dev/learn)",
	"Docker":        "Docker Get Started guide (docs.docker.com/get-started)",
	"Kubernetes":    "Kubernetes Basics (kubernetes.io/docs/tutorials/kubernetes-basics)",
	"AWS":           "AWS Cloud Practitioner Essentials",
	"Azure":         "Microsoft Learn: Azure Fundamentals",
	"GCP":           "Google Cloud Skills Boost: Cloud Digital Leader",
	"SQL":           "Mode SQL Tutorial (mode.com/sql-tutorial)",
	"Machine Learning": "Andrew Ng's Machine Learning Specialization",
	"TensorFlow":    "TensorFlow official tutorials (tensorflow.org/tutorials)",
	"PyTorch":       "PyTorch official tutorials (pytorch.org/tutorials)",
	"Terraform":     "HashiCorp Learn: Terraform",
	"Kotlin":        "Kotlin official docs (kotlinlang.org/docs)",
}
