package service

// Pools the mock generator draws from.
var (
	sampleCompanies = []string{"TechCorp", "InnovateLab", "StartupHub", "DigitalFlow", "CloudTech"}
	samplePositions = []string{"CEO", "CTO", "Marketing Director", "Sales Manager", "Founder"}
	sampleNames     = []string{"John Smith", "Sarah Johnson", "Mike Chen", "Emily Davis", "Alex Rodriguez"}
)
