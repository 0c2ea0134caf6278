package content

import "github.com/dtnitsch/polishpages/models"

// majorAreas is listed on the generic city-wide pages.
var majorAreas = []string{
	"Andheri", "Bandra", "Juhu", "Goregaon", "Malad",
	"Borivali", "Kandivali", "Powai", "Ghatkopar", "Mulund",
	"Dadar", "Parel", "Lower Parel", "Worli", "Colaba",
	"Chembur", "Kurla", "Sion", "Thane", "Navi Mumbai",
}

// mumbaiWide is used for locations without a curated neighbour list.
var mumbaiWide = []string{
	"Andheri", "Bandra", "Powai", "Dadar", "Worli", "Chembur", "Thane", "Borivali",
}

// nearbyAreas maps a location ID to its curated neighbours.
var nearbyAreas = map[string][]string{
	"andheri-west": {"Lokhandwala", "Versova", "Four Bungalows", "Oshiwara", "DN Nagar", "Juhu"},
	"andheri-east": {"Marol", "Chakala", "JB Nagar", "Saki Naka", "MIDC", "Vile Parle East"},
	"bandra-west":  {"Pali Hill", "Carter Road", "Bandstand", "Khar West", "Hill Road", "Linking Road"},
	"bandra-east":  {"Kalanagar", "Bandra Kurla Complex", "Kherwadi", "Government Colony", "Santacruz East"},
	"juhu":         {"JVPD Scheme", "Juhu Tara Road", "Gulmohar Road", "Vile Parle West", "Santacruz West"},
	"goregaon":     {"Film City Road", "Aarey Colony", "Oberoi Mall Area", "Bangur Nagar", "Jawahar Nagar"},
	"malad":        {"Malad West", "Malad East", "Mindspace", "Marve Road", "Orlem", "Evershine Nagar"},
	"borivali":     {"IC Colony", "Gorai", "Shimpoli", "Eksar", "Vazira Naka", "Borivali East"},
	"kandivali":    {"Thakur Village", "Charkop", "Mahavir Nagar", "Lokhandwala Township", "Poisar"},
	"powai":        {"Hiranandani Gardens", "IIT Powai", "Chandivali", "Saki Vihar Road", "Raheja Vihar", "Kanjurmarg"},
	"ghatkopar":    {"Ghatkopar East", "Ghatkopar West", "Pant Nagar", "Rajawadi", "Vidyavihar", "Asalpha"},
	"mulund":       {"Mulund West", "Mulund East", "Nahur", "Bhandup West", "Vaishali Nagar"},
	"dadar":        {"Shivaji Park", "Dadar TT", "Hindu Colony", "Parsi Colony", "Mahim", "Matunga West"},
	"lower-parel":  {"Worli Naka", "Kamala Mills", "Phoenix Mills", "Elphinstone Road", "Prabhadevi"},
	"worli":        {"Worli Sea Face", "Worli Naka", "Lotus Colony", "Annie Besant Road", "Prabhadevi"},
	"colaba":       {"Cuffe Parade", "Navy Nagar", "Apollo Bunder", "Fort", "Churchgate"},
	"malabar-hill": {"Walkeshwar", "Napean Sea Road", "Peddar Road", "Breach Candy", "Kemps Corner"},
	"chembur":      {"Chembur East", "Tilak Nagar", "Diamond Garden", "Sindhi Society", "Deonar", "Govandi"},
	"thane":        {"Ghodbunder Road", "Majiwada", "Naupada", "Vasant Vihar", "Hiranandani Estate", "Kolshet"},
	"navi-mumbai":  {"Vashi", "Nerul", "Kharghar", "Belapur", "Airoli", "Sanpada"},
}

// LocationAreas returns the neighbourhoods listed on a page for location.
func LocationAreas(location models.Location) []string {
	var src []string
	switch {
	case location.IsGeneric():
		src = majorAreas
	default:
		if curated, ok := nearbyAreas[location.ID]; ok {
			src = curated
		} else {
			src = mumbaiWide
		}
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
