package testutil

// Sample JSON responses for API testing

// SampleInfrastructureIndexResponse is a minimal infrastructure index, deliberately unsorted
const SampleInfrastructureIndexResponse = `[
	{
		"id": 3,
		"anzeigename": "Netz 2025",
		"fahrplanjahr": 2025,
		"gueltig_von": "2024-12-15",
		"gueltig_bis": "2025-12-13"
	},
	{
		"id": 2,
		"anzeigename": "Netz 2024",
		"fahrplanjahr": 2024,
		"gueltig_von": "2023-12-10",
		"gueltig_bis": "2024-12-14"
	},
	{
		"id": 4,
		"anzeigename": "Netz 2026 (Entwurf)",
		"fahrplanjahr": 2026,
		"gueltig_von": "2025-12-14",
		"gueltig_bis": "2026-12-12"
	}
]`

// SampleInfrastructureResponse is a minimal valid infrastructure (id 2)
const SampleInfrastructureResponse = `{
	"id": 2,
	"anzeigename": "Netz 2024",
	"fahrplanjahr": 2024,
	"ordnungsrahmen": {
		"betriebsstellen": [
			{"ds100": "KK", "langname_stammdaten": "Köln Hbf", "x": 6.958, "y": 50.943, "art": "Bf"},
			{"ds100": "KD", "langname_stammdaten": "Düsseldorf Hbf", "x": 6.794, "y": 51.220},
			{"ds100": "EDG", "langname_stammdaten": "Duisburg Hbf", "x": 6.776, "y": 51.430},
			{"ds100": "KB", "langname_stammdaten": "Bonn Hbf", "x": 7.097, "y": 50.732}
		],
		"mutter_betriebsstellen": [],
		"streckensegmente": [
			{"von": "KK", "bis": "KD", "streckennummer": 2650, "laenge": 39.6},
			{"von": "KD", "bis": "EDG", "streckennummer": 2650},
			{"von": "KB", "bis": "KK", "streckennummer": 2630}
		]
	}
}`

// SampleBrokenInfrastructureResponse references a station that does not exist (id 3)
const SampleBrokenInfrastructureResponse = `{
	"id": 3,
	"anzeigename": "Netz 2025",
	"ordnungsrahmen": {
		"betriebsstellen": [
			{"ds100": "KK", "langname_stammdaten": "Köln Hbf", "x": 6.958, "y": 50.943},
			{"ds100": "KD", "langname_stammdaten": "Düsseldorf Hbf", "x": 6.794, "y": 51.220}
		],
		"streckensegmente": [
			{"von": "KK", "bis": "KD", "streckennummer": 2650},
			{"von": "KD", "bis": "EDG", "streckennummer": 2650}
		]
	}
}`
