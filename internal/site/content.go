// Package site holds the static content of the clinic's landing page and
// renders it once into HTML.
package site

type NavLink struct {
	Label string
	Href  string
}

type Service struct {
	Title       string
	Description string
}

type Contact struct {
	Street   string
	District string
	City     string
	Phone    string
	Email    string
	Hours    string
	MapEmbed string
}

type Content struct {
	ClinicName   string
	Tagline      string
	Nav          []NavLink
	HeroBadge    string
	HeroTitle    string
	HeroText     string
	HeroImage    string
	Services     []Service
	AboutTitle   string
	AboutText    string
	AboutImage   string
	AboutBullets []string
	Contact      Contact
}

// Default is the content of the Pro Vida page.
func Default() Content {
	return Content{
		ClinicName: "Pro Vida",
		Tagline:    "Clínica Médica",
		Nav: []NavLink{
			{Label: "Início", Href: "#home"},
			{Label: "Sobre", Href: "#about"},
			{Label: "Serviços", Href: "#services"},
			{Label: "Localização", Href: "#location"},
			{Label: "Contato", Href: "#contact"},
		},
		HeroBadge: "Excelência em Medicina",
		HeroTitle: "Sua saúde, nossa prioridade.",
		HeroText:  "Viva Pro Vida plenamente com cuidado humanizado e tecnologia de ponta. Nossa equipe está pronta para cuidar de você e da sua família.",
		HeroImage: "https://images.unsplash.com/photo-1638202993928-7267aad84c31?q=80&w=2000&auto=format&fit=crop",
		Services: []Service{
			{Title: "Consultas Médicas", Description: "Atendimento com especialistas em diversas áreas, focado na escuta ativa e diagnóstico preciso."},
			{Title: "Exames Especializados", Description: "Tecnologia diagnóstica avançada para resultados rápidos e confiáveis."},
			{Title: "Cardiologia", Description: "Cuidado completo para o seu coração com check-ups e monitoramento contínuo."},
			{Title: "Acompanhamento Contínuo", Description: "Programas de saúde preventiva para garantir sua qualidade de vida a longo prazo."},
		},
		AboutTitle: "Cuidado humanizado e tecnologia de ponta",
		AboutText:  "Na Clínica Pro Vida, acreditamos que a saúde vai além de consultas e exames. Trata-se de acolhimento, entendimento e parceria. Nossa missão é proporcionar uma experiência de saúde que transforme vidas, unindo a expertise de profissionais renomados com a mais alta tecnologia diagnóstica.",
		AboutImage: "https://images.unsplash.com/photo-1622253692010-333f2da6031d?q=80&w=800&auto=format&fit=crop",
		AboutBullets: []string{
			"Profissionais treinados e atualizados",
			"Equipamentos modernos e precisos",
			"Ambiente acolhedor e seguro",
		},
		Contact: Contact{
			Street:   "R. Araxá, 150 - Vila Virginia",
			District: "Vila Virginia",
			City:     "Itaquaquecetuba - SP, 08573-100",
			Phone:    "(11) 4642-0000",
			Email:    "contato@clinicaprovida.com.br",
			Hours:    "Seg - Sex: 08h às 18h",
			MapEmbed: "https://www.google.com/maps?q=R.+Arax%C3%A1,+150+-+Vila+Virginia,+Itaquaquecetuba+-+SP&output=embed",
		},
	}
}
