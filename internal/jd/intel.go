package jd

import (
	"strings"

	"github.com/blockedby/careerdesk-os/internal/models"
)

// Static company-size rosters. A name missing from both lists means
// startup - the safest default for campus hiring.
var enterpriseCompanies = []string{
	"google", "microsoft", "amazon", "apple", "meta", "oracle", "ibm",
	"tcs", "infosys", "wipro", "accenture", "cognizant", "hcl",
	"capgemini", "deloitte", "adobe", "salesforce", "sap", "intel", "cisco",
}

var midsizeCompanies = []string{
	"flipkart", "swiggy", "zomato", "paytm", "razorpay", "zerodha",
	"freshworks", "phonepe", "cred", "meesho", "atlassian", "zoho",
	"browserstack", "postman", "innovaccer", "fractal",
}

// industryKeywords is scanned against company name + JD text, first hit wins.
var industryKeywords = []struct {
	keyword  string
	industry string
}{
	{"fintech", "Fintech"},
	{"payment", "Fintech"},
	{"bank", "Fintech"},
	{"trading", "Fintech"},
	{"e-commerce", "E-commerce"},
	{"ecommerce", "E-commerce"},
	{"retail", "E-commerce"},
	{"delivery", "Consumer"},
	{"food", "Consumer"},
	{"health", "Healthcare"},
	{"medical", "Healthcare"},
	{"edtech", "Edtech"},
	{"education", "Edtech"},
	{"learning", "Edtech"},
	{"cloud", "Cloud/Infrastructure"},
	{"saas", "SaaS"},
	{"analytics", "Data/Analytics"},
	{"consulting", "IT Services"},
	{"services", "IT Services"},
}

// GenerateCompanyIntel heuristically classifies the company.
// Blank company names produce no intel.
func GenerateCompanyIntel(company, jdText string) *models.CompanyIntel {
	name := strings.ToLower(strings.TrimSpace(company))
	if name == "" {
		return nil
	}

	size := "Startup"
	switch {
	case matchesAny(name, enterpriseCompanies):
		size = "Enterprise"
	case matchesAny(name, midsizeCompanies):
		size = "Mid-size"
	}

	industry := "Technology"
	haystack := name + " " + strings.ToLower(jdText)
	for _, ik := range industryKeywords {
		if strings.Contains(haystack, ik.keyword) {
			industry = ik.industry
			break
		}
	}

	return &models.CompanyIntel{Size: size, Industry: industry}
}

// GenerateRoundMapping returns the expected interview sequence for the
// inferred company size. Nil intel maps to the startup sequence.
func GenerateRoundMapping(intel *models.CompanyIntel) []models.RoundStage {
	size := "Startup"
	if intel != nil {
		size = intel.Size
	}

	switch size {
	case "Enterprise":
		return []models.RoundStage{
			{Name: "Online Assessment", Description: "Aptitude + coding test on the company platform"},
			{Name: "Technical Round 1", Description: "DSA and core CS fundamentals"},
			{Name: "Technical Round 2", Description: "Projects, system basics, and role-specific depth"},
			{Name: "HR Round", Description: "Behavioral fit, compensation, and logistics"},
		}
	case "Mid-size":
		return []models.RoundStage{
			{Name: "Screening", Description: "Recruiter call or take-home assignment"},
			{Name: "Technical Interview", Description: "Live coding plus project discussion"},
			{Name: "Hiring Manager Round", Description: "Team fit, expectations, and offer discussion"},
		}
	default:
		return []models.RoundStage{
			{Name: "Founder/Lead Chat", Description: "Motivation, portfolio, and culture fit"},
			{Name: "Practical Round", Description: "Pairing session or small real-world task"},
			{Name: "Final Discussion", Description: "Scope, ownership, and offer"},
		}
	}
}

func matchesAny(name string, roster []string) bool {
	for _, n := range roster {
		if strings.Contains(name, n) {
			return true
		}
	}
	return false
}
