package timezone

// aliases maps the link names of the tz "backward" file to the zones they
// point at. Links to Etc/UTC resolve to "UTC", and the GMT spellings keep
// their own zone so they still abbreviate as GMT.
var aliases = map[string]string{
	// UTC spellings
	"Etc/UCT":       TimezoneUTC,
	"Etc/UTC":       TimezoneUTC,
	"Etc/Universal": TimezoneUTC,
	"Etc/Zulu":      TimezoneUTC,
	"UCT":           TimezoneUTC,
	"Universal":     TimezoneUTC,
	"Zulu":          TimezoneUTC,

	// GMT spellings
	"Etc/GMT+0":     "Etc/GMT",
	"Etc/GMT-0":     "Etc/GMT",
	"Etc/GMT0":      "Etc/GMT",
	"Etc/Greenwich": "Etc/GMT",
	"GMT":           "Etc/GMT",
	"GMT+0":         "Etc/GMT",
	"GMT-0":         "Etc/GMT",
	"GMT0":          "Etc/GMT",
	"Greenwich":     "Etc/GMT",

	// Africa
	"Africa/Asmera":   "Africa/Asmara",
	"Africa/Timbuktu": "Africa/Abidjan",
	"Egypt":           "Africa/Cairo",
	"Libya":           "Africa/Tripoli",

	// Americas
	"America/Argentina/ComodRivadavia": "America/Argentina/Catamarca",
	"America/Atka":                     "America/Adak",
	"America/Buenos_Aires":             "America/Argentina/Buenos_Aires",
	"America/Catamarca":                "America/Argentina/Catamarca",
	"America/Coral_Harbour":            "America/Panama",
	"America/Cordoba":                  "America/Argentina/Cordoba",
	"America/Ensenada":                 "America/Tijuana",
	"America/Fort_Wayne":               "America/Indiana/Indianapolis",
	"America/Godthab":                  "America/Nuuk",
	"America/Indianapolis":             "America/Indiana/Indianapolis",
	"America/Jujuy":                    "America/Argentina/Jujuy",
	"America/Knox_IN":                  "America/Indiana/Knox",
	"America/Kralendijk":               "America/Puerto_Rico",
	"America/Louisville":               "America/Kentucky/Louisville",
	"America/Lower_Princes":            "America/Puerto_Rico",
	"America/Marigot":                  "America/Puerto_Rico",
	"America/Mendoza":                  "America/Argentina/Mendoza",
	"America/Montreal":                 "America/Toronto",
	"America/Nipigon":                  "America/Toronto",
	"America/Pangnirtung":              "America/Iqaluit",
	"America/Porto_Acre":               "America/Rio_Branco",
	"America/Rainy_River":              "America/Winnipeg",
	"America/Rosario":                  "America/Argentina/Cordoba",
	"America/Santa_Isabel":             "America/Tijuana",
	"America/Shiprock":                 "America/Denver",
	"America/St_Barthelemy":            "America/Puerto_Rico",
	"America/Thunder_Bay":              "America/Toronto",
	"America/Virgin":                   "America/Puerto_Rico",
	"America/Yellowknife":              "America/Edmonton",
	"Brazil/Acre":                      "America/Rio_Branco",
	"Brazil/DeNoronha":                 "America/Noronha",
	"Brazil/East":                      "America/Sao_Paulo",
	"Brazil/West":                      "America/Manaus",
	"Canada/Atlantic":                  "America/Halifax",
	"Canada/Central":                   "America/Winnipeg",
	"Canada/Eastern":                   "America/Toronto",
	"Canada/Mountain":                  "America/Edmonton",
	"Canada/Newfoundland":              "America/St_Johns",
	"Canada/Pacific":                   "America/Vancouver",
	"Canada/Saskatchewan":              "America/Regina",
	"Canada/Yukon":                     "America/Whitehorse",
	"Chile/Continental":                "America/Santiago",
	"Cuba":                             "America/Havana",
	"Jamaica":                          "America/Jamaica",
	"Mexico/BajaNorte":                 "America/Tijuana",
	"Mexico/BajaSur":                   "America/Mazatlan",
	"Mexico/General":                   "America/Mexico_City",
	"Navajo":                           "America/Denver",
	"US/Alaska":                        "America/Anchorage",
	"US/Aleutian":                      "America/Adak",
	"US/Arizona":                       "America/Phoenix",
	"US/Central":                       "America/Chicago",
	"US/East-Indiana":                  "America/Indiana/Indianapolis",
	"US/Eastern":                       TimezoneAmericaNewYork,
	"US/Indiana-Starke":                "America/Indiana/Knox",
	"US/Michigan":                      "America/Detroit",
	"US/Mountain":                      "America/Denver",
	"US/Pacific":                       TimezoneAmericaLosAngeles,

	// Asia
	"Asia/Ashkhabad":     "Asia/Ashgabat",
	"Asia/Calcutta":      "Asia/Kolkata",
	"Asia/Choibalsan":    "Asia/Ulaanbaatar",
	"Asia/Chongqing":     TimezoneAsiaShanghai,
	"Asia/Chungking":     TimezoneAsiaShanghai,
	"Asia/Dacca":         "Asia/Dhaka",
	"Asia/Harbin":        TimezoneAsiaShanghai,
	"Asia/Kashgar":       "Asia/Urumqi",
	"Asia/Katmandu":      "Asia/Kathmandu",
	"Asia/Macao":         "Asia/Macau",
	"Asia/Rangoon":       "Asia/Yangon",
	"Asia/Saigon":        "Asia/Ho_Chi_Minh",
	"Asia/Tel_Aviv":      "Asia/Jerusalem",
	"Asia/Thimbu":        "Asia/Thimphu",
	"Asia/Ujung_Pandang": "Asia/Makassar",
	"Asia/Ulan_Bator":    "Asia/Ulaanbaatar",
	"Europe/Nicosia":     "Asia/Nicosia",
	"Hongkong":           "Asia/Hong_Kong",
	"Iran":               "Asia/Tehran",
	"Israel":             "Asia/Jerusalem",
	"Japan":              TimezoneAsiaTokyo,
	"PRC":                TimezoneAsiaShanghai,
	"ROC":                "Asia/Taipei",
	"ROK":                "Asia/Seoul",
	"Singapore":          "Asia/Singapore",

	// Atlantic
	"Atlantic/Faeroe": "Atlantic/Faroe",
	"Iceland":         "Atlantic/Reykjavik",

	// Australia
	"Australia/ACT":        TimezoneAustraliaSydney,
	"Australia/Canberra":   TimezoneAustraliaSydney,
	"Australia/Currie":     "Australia/Hobart",
	"Australia/LHI":        "Australia/Lord_Howe",
	"Australia/NSW":        TimezoneAustraliaSydney,
	"Australia/North":      "Australia/Darwin",
	"Australia/Queensland": "Australia/Brisbane",
	"Australia/South":      "Australia/Adelaide",
	"Australia/Tasmania":   "Australia/Hobart",
	"Australia/Victoria":   "Australia/Melbourne",
	"Australia/West":       "Australia/Perth",
	"Australia/Yancowinna": "Australia/Broken_Hill",

	// Europe
	"Arctic/Longyearbyen": "Europe/Berlin",
	"Asia/Istanbul":       "Europe/Istanbul",
	"Atlantic/Jan_Mayen":  "Europe/Berlin",
	"Eire":                "Europe/Dublin",
	"Europe/Belfast":      TimezoneEuropeLondon,
	"Europe/Bratislava":   "Europe/Prague",
	"Europe/Busingen":     "Europe/Zurich",
	"Europe/Kiev":         "Europe/Kyiv",
	"Europe/Mariehamn":    "Europe/Helsinki",
	"Europe/Podgorica":    "Europe/Belgrade",
	"Europe/San_Marino":   "Europe/Rome",
	"Europe/Tiraspol":     "Europe/Chisinau",
	"Europe/Uzhgorod":     "Europe/Kyiv",
	"Europe/Vatican":      "Europe/Rome",
	"Europe/Zaporozhye":   "Europe/Kyiv",
	"GB":                  TimezoneEuropeLondon,
	"GB-Eire":             TimezoneEuropeLondon,
	"Poland":              "Europe/Warsaw",
	"Portugal":            "Europe/Lisbon",
	"Turkey":              "Europe/Istanbul",
	"W-SU":                "Europe/Moscow",

	// Pacific
	"Antarctica/South_Pole": "Pacific/Auckland",
	"Chile/EasterIsland":    "Pacific/Easter",
	"Kwajalein":             "Pacific/Kwajalein",
	"NZ":                    "Pacific/Auckland",
	"NZ-CHAT":               "Pacific/Chatham",
	"Pacific/Enderbury":     "Pacific/Kanton",
	"Pacific/Johnston":      "Pacific/Honolulu",
	"Pacific/Ponape":        "Pacific/Guadalcanal",
	"Pacific/Samoa":         "Pacific/Pago_Pago",
	"Pacific/Truk":          "Pacific/Port_Moresby",
	"Pacific/Yap":           "Pacific/Port_Moresby",
	"US/Hawaii":             "Pacific/Honolulu",
	"US/Samoa":              "Pacific/Pago_Pago",
}
