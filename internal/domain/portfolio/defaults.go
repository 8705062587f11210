package portfolio

// DefaultPortfolio returns the seed portfolio every new session starts from.
// Reset restores exactly this value.
func DefaultPortfolio() *Portfolio {
	phone := "+1 (555) 123-4567"
	link := "https://example.com"

	return &Portfolio{
		Name:  "John Doe",
		Title: "Frontend Developer",
		Bio: "Passionate frontend developer with a keen eye for design and user experience. " +
			"I love building beautiful, responsive, and accessible web applications.",
		Skills: []Skill{
			{Name: "HTML", Level: 90},
			{Name: "CSS", Level: 85},
			{Name: "JavaScript", Level: 80},
			{Name: "React", Level: 85},
			{Name: "TypeScript", Level: 75},
			{Name: "Tailwind CSS", Level: 90},
		},
		SocialLinks: []SocialLink{
			{Platform: "GitHub", URL: "https://github.com"},
			{Platform: "LinkedIn", URL: "https://linkedin.com"},
			{Platform: "Twitter", URL: "https://twitter.com"},
		},
		Projects: []Project{
			{
				ID:          "1",
				Title:       "E-commerce Website",
				Description: "A fully responsive e-commerce website built with React and Node.js.",
				Tags:        []string{"React", "Node.js", "MongoDB", "Express"},
				Link:        &link,
			},
			{
				ID:          "2",
				Title:       "Weather App",
				Description: "A weather application that shows current weather and forecast based on location.",
				Tags:        []string{"JavaScript", "API", "CSS"},
				Link:        &link,
			},
			{
				ID:          "3",
				Title:       "Task Management Tool",
				Description: "A productivity tool that helps teams manage tasks and projects efficiently.",
				Tags:        []string{"React", "Firebase", "Tailwind CSS"},
				Link:        &link,
			},
		},
		Experiences: []Experience{
			{
				ID:        "1",
				Title:     "Frontend Developer",
				Company:   "Tech Solutions Inc",
				Location:  "San Francisco, CA",
				StartDate: "2020-01",
				EndDate:   "2023-02",
				Description: "Developed and maintained responsive web applications using React and TypeScript. " +
					"Collaborated with designers to implement UI/UX improvements.",
			},
			{
				ID:        "2",
				Title:     "UI Developer",
				Company:   "Creative Agency",
				Location:  "New York, NY",
				StartDate: "2018-05",
				EndDate:   "2019-12",
				Description: "Created interactive web experiences with JavaScript, HTML, and CSS. " +
					"Worked in an agile team to deliver projects on time.",
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Institution: "University of Technology",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   "2014-09",
				EndDate:     "2018-05",
			},
		},
		Contact: Contact{
			Email: "john.doe@example.com",
			Phone: &phone,
		},
	}
}

func DefaultSettings() *Settings {
	return &Settings{
		Theme:     ThemeMinimal,
		FontSize:  FontMedium,
		Spacing:   SpacingNormal,
		Animation: true,
	}
}
