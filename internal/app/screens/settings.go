package screens

import (
	"fmt"
	"sort"
)

// Country is one entry of the country picker.
type Country struct {
	Code int
	Name string
}

// Countries is the table offered by the country picker, ordered by code.
var Countries = []Country{
	{1, "Japan"}, {8, "Anguilla"}, {9, "Antigua and Barbuda"}, {10, "Argentina"},
	{11, "Aruba"}, {12, "Bahamas"}, {13, "Barbados"}, {14, "Belize"},
	{15, "Bolivia"}, {16, "Brazil"}, {17, "British Virgin Islands"}, {18, "Canada"},
	{19, "Cayman Islands"}, {20, "Chile"}, {21, "Colombia"}, {22, "Costa Rica"},
	{23, "Dominica"}, {24, "Dominican Republic"}, {25, "Ecuador"}, {26, "El Salvador"},
	{27, "French Guiana"}, {28, "Grenada"}, {29, "Guadeloupe"}, {30, "Guatemala"},
	{31, "Guyana"}, {32, "Haiti"}, {33, "Honduras"}, {34, "Jamaica"},
	{35, "Martinique"}, {36, "Mexico"}, {37, "Montserrat"}, {38, "Netherlands Antilles"},
	{39, "Nicaragua"}, {40, "Panama"}, {41, "Paraguay"}, {42, "Peru"},
	{43, "Saint Kitts and Nevis"}, {44, "Saint Lucia"}, {45, "Saint Vincent and the Grenadines"},
	{46, "Suriname"}, {47, "Trinidad and Tobago"}, {48, "Turks and Caicos Islands"},
	{49, "United States"}, {50, "Uruguay"}, {51, "US Virgin Islands"}, {52, "Venezuela"},
	{64, "Albania"}, {65, "Australia"}, {66, "Austria"}, {67, "Belgium"},
	{68, "Bosnia and Herzegovina"}, {69, "Botswana"}, {70, "Bulgaria"}, {71, "Croatia"},
	{72, "Cyprus"}, {73, "Czech Republic"}, {74, "Denmark"}, {75, "Estonia"},
	{76, "Finland"}, {77, "France"}, {78, "Germany"}, {79, "Greece"},
	{80, "Hungary"}, {81, "Iceland"}, {82, "Ireland"}, {83, "Italy"},
	{84, "Latvia"}, {85, "Lesotho"}, {86, "Liechtenstein"}, {87, "Lithuania"},
	{88, "Luxembourg"}, {89, "Macedonia"}, {90, "Malta"}, {91, "Montenegro"},
	{92, "Mozambique"}, {93, "Namibia"}, {94, "Netherlands"}, {95, "New Zealand"},
	{96, "Norway"}, {97, "Poland"}, {98, "Portugal"}, {99, "Romania"},
	{100, "Russia"}, {101, "Serbia"}, {102, "Slovakia"}, {103, "Slovenia"},
	{104, "South Africa"}, {105, "Spain"}, {106, "Swaziland"}, {107, "Sweden"},
	{108, "Switzerland"}, {109, "Turkey"}, {110, "United Kingdom"}, {111, "Zambia"},
	{112, "Zimbabwe"}, {128, "Taiwan"}, {136, "South Korea"}, {144, "Hong Kong"},
	{145, "Macao"}, {152, "Indonesia"}, {153, "Singapore"}, {154, "Thailand"},
	{155, "Philippines"}, {156, "Malaysia"}, {160, "China"}, {168, "United Arab Emirates"},
	{169, "India"}, {170, "Egypt"}, {171, "Oman"}, {172, "Qatar"},
	{173, "Kuwait"}, {174, "Saudi Arabia"}, {175, "Syria"}, {176, "Bahrain"},
	{177, "Jordan"},
}

// Label is how a country is listed.
func (c Country) Label() string { return fmt.Sprintf("%d - %s", c.Code, c.Name) }

// Settings is the editor state the demo screens read and change.
type Settings struct {
	Country    int
	ExtraSaves map[string][]string
}

func NewSettings() *Settings {
	return &Settings{Country: 49, ExtraSaves: map[string][]string{}}
}

// CountryName returns the name for the selected country code.
func (s *Settings) CountryName() string {
	i := sort.Search(len(Countries), func(i int) bool { return Countries[i].Code >= s.Country })
	if i < len(Countries) && Countries[i].Code == s.Country {
		return Countries[i].Name
	}
	return "Unknown"
}

// Group pairs the two versions of a game that share extra save slots.
type Group struct {
	Titles [2]string
	IDs    [2]string
	Labels [2]string
}

// Single reports whether the group has only one version.
func (g Group) Single() bool { return g.IDs[1] == "" || g.IDs[1] == g.IDs[0] }

var Groups = []Group{
	{Titles: [2]string{"Pokémon Platinum Version", ""}, IDs: [2]string{"CPUE", ""}, Labels: [2]string{"Pt", ""}},
	{Titles: [2]string{"Pokémon Diamond Version", "Pokémon Pearl Version"}, IDs: [2]string{"ADAE", "APAE"}, Labels: [2]string{"D", "P"}},
	{Titles: [2]string{"Pokémon HeartGold Version", "Pokémon SoulSilver Version"}, IDs: [2]string{"IPKE", "IPGE"}, Labels: [2]string{"HG", "SS"}},
	{Titles: [2]string{"Pokémon Black Version", "Pokémon White Version"}, IDs: [2]string{"IRBE", "IRAE"}, Labels: [2]string{"B", "W"}},
	{Titles: [2]string{"Pokémon Black Version 2", "Pokémon White Version 2"}, IDs: [2]string{"IREE", "IRDE"}, Labels: [2]string{"B2", "W2"}},
	{Titles: [2]string{"Pokémon X", "Pokémon Y"}, IDs: [2]string{"0x0055D", "0x0055E"}, Labels: [2]string{"X", "Y"}},
	{Titles: [2]string{"Pokémon Omega Ruby", "Pokémon Alpha Sapphire"}, IDs: [2]string{"0x011C4", "0x011C5"}, Labels: [2]string{"OR", "AS"}},
	{Titles: [2]string{"Pokémon Sun", "Pokémon Moon"}, IDs: [2]string{"0x01648", "0x0175E"}, Labels: [2]string{"S", "M"}},
	{Titles: [2]string{"Pokémon Ultra Sun", "Pokémon Ultra Moon"}, IDs: [2]string{"0x01B50", "0x01B51"}, Labels: [2]string{"US", "UM"}},
}
