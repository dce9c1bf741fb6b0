package dashboard

import "leadgen/internal/models"

// SampleLeads returns demonstration leads, one per tier.
func SampleLeads() []models.Lead {
	return []models.Lead{
		{
			Title:    "João Silva - CEO Tech Innovations",
			Link:     "https://linkedin.com/in/joao-silva-ceo",
			Summary:  "CEO da Tech Innovations com 10+ anos de experiência em tecnologia",
			Analysis: "ALTO POTENCIAL - CEO de empresa de tecnologia, decisor principal, ótimo fit para serviços de marketing digital.",
		},
		{
			Title:    "Maria Santos - Founder StartupXYZ",
			Link:     "https://linkedin.com/in/maria-santos-founder",
			Summary:  "Founder e CEO da StartupXYZ, empresa de e-commerce em crescimento",
			Analysis: "MÉDIO POTENCIAL - Founder de startup, pode ter orçamento limitado mas interesse em crescimento.",
		},
		{
			Title:    "Carlos Costa - Director Financeiro",
			Link:     "https://linkedin.com/in/carlos-costa-cfo",
			Summary:  "CFO em empresa multinacional, especialista em gestão financeira",
			Analysis: "BAIXO POTENCIAL - Foco em área financeira, pouco provável interesse direto em marketing.",
		},
	}
}
