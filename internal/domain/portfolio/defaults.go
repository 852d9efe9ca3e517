package portfolio

// Defaults returns the built-in portfolio document. The repository starts
// from this on first run and falls back to it section by section when
// persisted data predates a schema addition.
func Defaults() Document {
	return Document{
		Personal: Personal{
			FirstName: "Abeer",
			LastName:  "Hasan",
			Role:      "Front-end Dev & Digital Creator",
			Tagline:   "Bridging Code, Gaming & Creativity.",
			Bio: `I am Abeer, a versatile digital professional from Bangladesh with expertise in front-end development, freelance digital work, gaming, and content creation. As a front-end developer, I specialize in crafting clean, responsive, and user-friendly websites using HTML and CSS, focusing on performance, usability, and modern design principles.

In my freelance work, I have successfully handled projects involving data entry, lead generation, data scraping, document preparation, and creating professional content in Microsoft Word, Excel, and PowerPoint. This experience has honed my organizational skills, attention to detail, and ability to deliver high-quality results under deadlines.

Beyond the technical realm, I am a competitive gamer and former VALORANT esports player with Team Liquid, which has instilled discipline, strategic thinking, teamwork, and adaptability. I also run a gaming-focused YouTube channel and have extensive experience in video editing and content production, allowing me to combine creativity with technical precision.

I am driven by continuous learning and growth, blending technical expertise, creative skills, and professional discipline to produce meaningful digital experiences. My goal is to develop as a front-end developer and digital professional while expanding my creative, gaming, and freelance pursuits.`,
			Location:     "Bangladesh",
			AvatarURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?auto=format&fit=crop&w=400&h=400",
			Availability: "Open for opportunities",
			Email:        "abirshuvo71@gmail.com",
			Stats: []StatPair{
				{Label: "Esports Level", Value: "Pro"},
				{Label: "Clients Happy", Value: "100%"},
				{Label: "Dedication", Value: "High"},
				{Label: "Gaming Exp", Value: "Elite"},
			},
		},
		Theme: Theme{
			Name:      "Deep Orange",
			Primary:   "249 115 22",
			Secondary: "253 186 116",
			Hex:       "#F97316",
		},
		Socials: []SocialLink{
			{Platform: "Facebook", URL: "https://www.facebook.com/abirFaahim", Icon: "Facebook", Username: "Abir Faahim"},
			{Platform: "Instagram", URL: "https://www.instagram.com/xbir_0007/", Icon: "Instagram", Username: "@xbir_0007"},
			{Platform: "GitHub", URL: "https://github.com/OPabeer", Icon: "Github", Username: "OPabeer"},
			{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/abeer-hasan007/", Icon: "Linkedin", Username: "Abeer Hasan"},
			{Platform: "WhatsApp", URL: "https://wa.me/8801868995304", Icon: "Phone", Username: "+880 1868995304"},
		},
		Stack: []string{
			"HTML5", "CSS3", "MS Excel", "MS Word", "PowerPoint", "Video Editing", "Data Scraping", "Lead Gen",
		},
		Services: []string{
			"Front-End Development",
			"Data Entry & Scraping",
			"Video Editing",
			"Esports Strategy",
		},
		Experience: []Experience{
			{
				ID:          "1",
				Role:        "Freelancer",
				Company:     "Self-Employed",
				Period:      "Present",
				Description: "Providing data entry, lead generation, scraping, and document formatting services with precision.",
			},
			{
				ID:          "2",
				Role:        "Content Creator",
				Company:     "YouTube",
				Period:      "Ongoing",
				Description: "Producing and editing gaming gameplay, utilizing visual storytelling and consistent pacing.",
			},
			{
				ID:          "3",
				Role:        "Competitive Player",
				Company:     "Team Liquid (VALORANT)",
				Period:      "Former",
				Description: "Competed at a professional level, mastering teamwork, communication, and performance under pressure.",
			},
		},
		Projects: []Project{
			{
				ID:          "p1",
				Title:       "Gaming Content Hub",
				Description: "A digital channel featuring high-quality gameplay editing and visual storytelling.",
				Tags:        []string{"Video Editing", "Content"},
				ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?auto=format&fit=crop&w=800&q=80",
				Link:        "#",
				Featured:    true,
				Year:        "2024",
			},
			{
				ID:          "p2",
				Title:       "Corporate Data Suite",
				Description: "Comprehensive data organization and presentation formatting for business clients.",
				Tags:        []string{"Excel", "PowerPoint"},
				ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&w=800&q=80",
				Link:        "#",
				Featured:    true,
				Year:        "2023",
			},
			{
				ID:          "p3",
				Title:       "Front-end Portfolio",
				Description: "Clean, responsive interface designs built with HTML & CSS.",
				Tags:        []string{"HTML", "CSS"},
				ImageURL:    "https://images.unsplash.com/photo-1507238691740-187a5b1d37b8?auto=format&fit=crop&w=800&q=80",
				Link:        "#",
				Featured:    true,
				Year:        "2023",
			},
		},
		Process: []ProcessStep{
			{
				ID:          "step1",
				Title:       "Strategize",
				Description: "Apply strategic thinking from esports to plan the project roadmap.",
				Icon:        "Cpu",
			},
			{
				ID:          "step2",
				Title:       "Execute",
				Description: "Implement clean code or accurate data entry with extreme attention to detail.",
				Icon:        "Terminal",
			},
			{
				ID:          "step3",
				Title:       "Polish",
				Description: "Refine visual layouts or edit content for maximum clarity and engagement.",
				Icon:        "Sparkles",
			},
		},
		GameSettings: GameSettings{
			FreeFire: GameConfig{
				Game:       "Free Fire (Emulator)",
				Experience: "6+ Years",
				Settings: []GameSettingRow{
					{Label: "Former Team", Value: "NG BD"},
					{Label: "Resolution", Value: "1920x1080"},
					{Label: "DPI", Value: "280"},
					{Label: "Device", Value: "Asus ROG 2"},
					{Label: "Emulators", Value: "BS 4.240, E4VX 4.250, MSI 5.9"},
					{Label: "Tweaks", Value: "Tweaks 2"},
					{Label: "Gamepad Sens", Value: "1,000,000"},
					{Label: "Fire Button", Value: "1% Size"},
					{Label: "X Axis", Value: "0.11 - 0.13"},
					{Label: "Y Axis", Value: "2.8 - 3.7"},
					{Label: "Mouse DPI", Value: "1250"},
					{Label: "Polling Rate", Value: "500Hz"},
				},
			},
			Valorant: GameConfig{
				Game:       "Valorant",
				Experience: "5+ Years",
				Settings: []GameSettingRow{
					{Label: "Resolution", Value: "1080p"},
					{Label: "Mouse DPI", Value: "1100"},
					{Label: "Polling Rate", Value: "1000Hz"},
					{Label: "Sensitivity", Value: "0.67"},
					{Label: "Crosshair", Value: "Green, Size 2"},
					{Label: "Viewmodel", Value: "Standard"},
					{Label: "Keybinds", Value: "Default"},
					{Label: "Video", Value: "High Performance"},
				},
			},
		},
		Pricing: []PricingPlan{
			{
				ID:     "basic",
				Title:  "Data & Admin",
				Price:  "$20",
				Period: "/ hour",
				Features: []string{
					"Data Entry & Cleaning",
					"Lead Generation",
					"Document Formatting",
					"MS Office Tasks",
					"Fast Turnaround",
				},
				Highlight: false,
			},
			{
				ID:     "creative",
				Title:  "Web & Creative",
				Price:  "$40",
				Period: "/ hour",
				Features: []string{
					"HTML/CSS Development",
					"Video Editing",
					"Responsive Layouts",
					"Content Strategy",
					"Revisions Included",
				},
				Highlight: true,
			},
		},
		FAQs: []FAQ{
			{
				ID:       "f1",
				Question: "What is your main focus?",
				Answer:   "I sit at the intersection of technical front-end development, precise data work, and creative digital editing.",
			},
			{
				ID:       "f2",
				Question: "Do you offer esports coaching?",
				Answer:   "Yes, I leverage my Team Liquid experience to offer strategic insights and coaching for VALORANT.",
			},
			{
				ID:       "f3",
				Question: "What tools do you use?",
				Answer:   "I am proficient in VS Code (HTML/CSS), the Microsoft Office Suite, and video editing software.",
			},
			{
				ID:       "f4",
				Question: "Are you available for freelance?",
				Answer:   "Absolutely. I am currently open to data, development, and editing projects.",
			},
		},
		Testimonials: []Testimonial{
			{
				ID:        "t1",
				Name:      "Pro Gaming Lead",
				Role:      "Esports Manager",
				Quote:     "Abeer brings the same discipline and communication skills from the server to his professional work. Reliable, sharp, and talented.",
				AvatarURL: "https://images.unsplash.com/photo-1560250097-0b93528c311a?fit=crop&w=200&h=200",
			},
		},
	}
}

// Template returns the default-shaped record appended by AddItem for the
// given list section.
func Template(section string) (any, bool) {
	switch section {
	case "socials":
		return SocialLink{Platform: "Platform", URL: "https://", Icon: "Link", Username: "@username"}, true
	case "experience":
		return Experience{Role: "New Role", Company: "Company", Period: "2024 - Present", Description: "Job description..."}, true
	case "projects":
		return Project{Title: "New Project", Description: "Description...", Tags: []string{"Tag1"}, ImageURL: "https://via.placeholder.com/800", Link: "#", Featured: false, Year: "2024"}, true
	case "process":
		return ProcessStep{Title: "Step Title", Description: "Step description...", Icon: "Circle"}, true
	case "pricing":
		return PricingPlan{Title: "Plan Name", Price: "$0", Period: "/ project", Features: []string{"Feature 1", "Feature 2"}, Highlight: false}, true
	case "faqs":
		return FAQ{Question: "New Question?", Answer: "Answer here."}, true
	case "testimonials":
		return Testimonial{Name: "Client Name", Role: "Role", Quote: "Great work!", AvatarURL: "https://via.placeholder.com/150"}, true
	}
	return nil, false
}
