package rendering

import "github.com/jonathan/autoresume/internal/types"

func sampleResume() *types.Resume {
	return &types.Resume{
		Contact: types.Contact{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Boston, MA",
			GitHub:   "github.com/jane",
		},
		Education: []types.Education{
			{School: "State University", Degree: "BS Computer Science", Dates: "Aug 2021 – May 2025", GPA: "3.8"},
		},
		Skills: map[string][]string{
			"Tools":     {"Git", "Docker"},
			"Languages": {"Python", "C#"},
		},
		Experience: []types.Entry{{
			Title:   "Software Intern",
			Company: "Crest",
			Dates:   "May 2025 – Present",
			Tools:   []string{"Python", "GitHub Actions"},
			Bullets: []string{
				"• Created and managed the company's website using Python, GitHub Actions.",
				"• Cut build time by 40% & saved $2k.",
				"• Supported Crest objectives by enhancing usability.",
			},
		}},
		Projects: []types.Entry{{
			Title:   "Club Site",
			Dates:   "2024",
			Bullets: []string{"• Co-founded the club by teaching female students HTML and CSS, improving audience engagement."},
		}},
		Extracurriculars: []types.Entry{},
	}
}
