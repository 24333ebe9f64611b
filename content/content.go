// Package content holds the static marketing copy served to the public
// pages: landing, about, contact and reviews.
package content

// Feature is one landing-page highlight card.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Landing is the landing page payload.
type Landing struct {
	Heading    string    `json:"heading"`
	Tagline    string    `json:"tagline"`
	CallToAct  string    `json:"callToAction"`
	Features   []Feature `json:"features"`
	Categories []string  `json:"categories"`
}

// About is the about page payload.
type About struct {
	Heading    string   `json:"heading"`
	Body       string   `json:"body"`
	Founder    string   `json:"founder"`
	Principles []string `json:"principles"`
}

// Contact is the contact page payload.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

// Review is one testimonial.
type Review struct {
	Name   string `json:"name"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

// GetLanding returns the landing page content.
func GetLanding() Landing {
	return Landing{
		Heading:   "Welcome to DivineSpark",
		Tagline:   "Energy-based healing to bring peace, health, and happiness into your life.",
		CallToAct: "Explore Sessions",
		Features: []Feature{
			{Title: "Guided Sessions", Description: "Live online and in-person sessions led by experienced guides.", Icon: "Calendar"},
			{Title: "No-Touch Healing", Description: "Energy-based practice involving no touch and no drug therapy.", Icon: "Heart"},
			{Title: "Open to Everyone", Description: "Free introductory sessions alongside paid deep-dive programs.", Icon: "Users"},
		},
		Categories: []string{"Healing", "Meditation", "Breathwork", "Wellbeing", "General"},
	}
}

// GetAbout returns the about page content.
func GetAbout() About {
	return About{
		Heading: "About DivineSpark",
		Body: "Founded by Suvir Sabnis, DivineSpark offers energy-based healing that " +
			"involves no touch and no drug therapy. Our approach focuses on restoring " +
			"balance and harmony to bring peace, health, and happiness.",
		Founder: "Suvir Sabnis",
		Principles: []string{
			"Restore balance and harmony",
			"No touch, no drug therapy",
			"Peace, health and happiness for every participant",
		},
	}
}

// GetContact returns the contact page content.
func GetContact() Contact {
	return Contact{
		Email:   "hello@divinespark.in",
		Phone:   "+91 98000 00000",
		Address: "Pune, Maharashtra, India",
		Hours:   "Mon-Sat, 9:00-18:00 IST",
	}
}

// GetReviews returns the testimonials shown on the reviews page.
func GetReviews() []Review {
	return []Review{
		{Name: "Anjali M.", Quote: "The sessions brought a calm I had not felt in years.", Rating: 5},
		{Name: "Rohit K.", Quote: "Booking was effortless and the guide was wonderful.", Rating: 5},
		{Name: "Priya S.", Quote: "I started with a free session and never looked back.", Rating: 4},
	}
}
