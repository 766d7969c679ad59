// Package tagging - ontology.go declares the closed tag vocabulary. The
// tables are read-only after init and their order fixes the order labels
// are attached in.
package tagging

// Label pairs a tag label with the keywords that attach it.
type Label struct {
	Name     string
	Keywords []string
}

// Category is an ordered list of labels for one tag dimension.
type Category struct {
	Name   string
	Labels []Label
}

var researchDomains = Category{
	Name: "research_domains",
	Labels: []Label{
		{Name: "health", Keywords: []string{"health", "medical", "clinical", "biomedical", "disease", "treatment", "therapy"}},
		{Name: "engineering", Keywords: []string{"engineering", "technology", "innovation", "design", "manufacturing"}},
		{Name: "science", Keywords: []string{"science", "research", "discovery", "experiment", "laboratory"}},
		{Name: "education", Keywords: []string{"education", "learning", "teaching", "student", "curriculum"}},
		{Name: "environment", Keywords: []string{"environment", "climate", "sustainability", "energy", "renewable"}},
		{Name: "social", Keywords: []string{"social", "community", "society", "behavior", "policy", "public"}},
	},
}

var methods = Category{
	Name: "methods",
	Labels: []Label{
		{Name: "experimental", Keywords: []string{"experiment", "trial", "testing", "laboratory", "empirical"}},
		{Name: "computational", Keywords: []string{"computational", "modeling", "simulation", "algorithm", "data analysis"}},
		{Name: "theoretical", Keywords: []string{"theoretical", "theory", "mathematical", "conceptual"}},
		{Name: "field_study", Keywords: []string{"field study", "fieldwork", "survey", "observation", "ethnographic"}},
	},
}

var populations = Category{
	Name: "populations",
	Labels: []Label{
		{Name: "students", Keywords: []string{"student", "undergraduate", "graduate", "postdoctoral"}},
		{Name: "faculty", Keywords: []string{"faculty", "professor", "researcher", "investigator"}},
		{Name: "institutions", Keywords: []string{"institution", "university", "college", "organization"}},
		{Name: "communities", Keywords: []string{"community", "public", "population", "society"}},
	},
}

// Sponsor themes are not keyword-driven; exactly one is chosen from the
// agency field.
const (
	themeBasicResearch  = "basic_research"
	themeHealthResearch = "health_research"
	themeGeneral        = "general"
)
