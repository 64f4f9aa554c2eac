package repositories

import (
	"time"

	dm "gompa/internal/models/domain_models"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// SeedMonasteries is the static catalog the application ships with. The
// itinerary never copies more than id and display fields out of it.
func SeedMonasteries() []dm.Monastery {
	return []dm.Monastery{
		{
			ID: "rumtek", Name: "Rumtek Monastery", Location: "Rumtek, East Sikkim",
			Latitude: 27.2886, Longitude: 88.5615, Era: "20th Century", Founded: 1966,
			Description: "Seat-in-exile of the Karmapa and the largest monastery in Sikkim, rebuilt in the 1960s on the site of a 18th-century Kagyu foundation.",
			ImageURL:    "/media/monasteries/rumtek.jpg", AudioURL: "/media/audio/rumtek.mp3",
		},
		{
			ID: "pemayangtse", Name: "Pemayangtse Monastery", Location: "Pelling, West Sikkim",
			Latitude: 27.3052, Longitude: 88.2517, Era: "18th Century", Founded: 1705,
			Description: "One of the oldest Nyingma monasteries, famous for the seven-tiered Zangdok Palri wooden model on its top floor.",
			ImageURL:    "/media/monasteries/pemayangtse.jpg", AudioURL: "/media/audio/pemayangtse.mp3",
		},
		{
			ID: "tashiding", Name: "Tashiding Monastery", Location: "Tashiding, West Sikkim",
			Latitude: 27.3084, Longitude: 88.2982, Era: "18th Century", Founded: 1717,
			Description: "Hilltop monastery between the Rathong and Rangeet rivers, held to be the most sacred in Sikkim and home of the Bhumchu water ceremony.",
			ImageURL:    "/media/monasteries/tashiding.jpg", AudioURL: "/media/audio/tashiding.mp3",
		},
		{
			ID: "enchey", Name: "Enchey Monastery", Location: "Gangtok, East Sikkim",
			Latitude: 27.3360, Longitude: 88.6190, Era: "20th Century", Founded: 1909,
			Description: "Small Nyingma gompa above Gangtok on a site blessed by the flying tantric master Druptob Karpo; known for its annual Kagyed masked dance.",
			ImageURL:    "/media/monasteries/enchey.jpg", AudioURL: "/media/audio/enchey.mp3",
		},
		{
			ID: "dubdi", Name: "Dubdi Monastery", Location: "Yuksom, West Sikkim",
			Latitude: 27.3664, Longitude: 88.2297, Era: "18th Century", Founded: 1701,
			Description: "The first monastery of Sikkim, founded shortly after the coronation of the first Chogyal at Yuksom; reached by a forest footpath.",
			ImageURL:    "/media/monasteries/dubdi.jpg", AudioURL: "/media/audio/dubdi.mp3",
		},
		{
			ID: "sanga-choeling", Name: "Sanga Choeling Monastery", Location: "Pelling, West Sikkim",
			Latitude: 27.2963, Longitude: 88.2330, Era: "17th Century", Founded: 1697,
			Description: "Ridge-top Nyingma monastery above Pelling, among the oldest in Sikkim, founded by Lhatsun Chenpo.",
			ImageURL:    "/media/monasteries/sanga-choeling.jpg", AudioURL: "/media/audio/sanga-choeling.mp3",
		},
		{
			ID: "phodong", Name: "Phodong Monastery", Location: "Phodong, North Sikkim",
			Latitude: 27.4123, Longitude: 88.5838, Era: "18th Century", Founded: 1740,
			Description: "Kagyu monastery on the north road, rebuilt after earthquake damage; hosts the Losoong cham dances each winter.",
			ImageURL:    "/media/monasteries/phodong.jpg", AudioURL: "/media/audio/phodong.mp3",
		},
		{
			ID: "ralang", Name: "Ralang Monastery", Location: "Ravangla, South Sikkim",
			Latitude: 27.3275, Longitude: 88.3622, Era: "18th Century", Founded: 1768,
			Description: "Kagyu monastery near Ravangla with a large new complex (Palchen Choeling) beside the old gompa; famous for the Pang Lhabsol festival.",
			ImageURL:    "/media/monasteries/ralang.jpg", AudioURL: "/media/audio/ralang.mp3",
		},
		{
			ID: "phensang", Name: "Phensang Monastery", Location: "Kabi, North Sikkim",
			Latitude: 27.4260, Longitude: 88.6110, Era: "18th Century", Founded: 1721,
			Description: "Kagyu monastery on the gentle slope between Kabi and Phodong, with one of the largest monk communities in Sikkim.",
			ImageURL:    "/media/monasteries/phensang.jpg", AudioURL: "/media/audio/phensang.mp3",
		},
		{
			ID: "lingdum", Name: "Lingdum Monastery", Location: "Ranka, East Sikkim",
			Latitude: 27.3318, Longitude: 88.6793, Era: "20th Century", Founded: 1999,
			Description: "Sprawling modern Kagyu complex near Ranka, also known as Pal Zurmang Kagyud; a frequent film location east of Gangtok.",
			ImageURL:    "/media/monasteries/lingdum.jpg", AudioURL: "/media/audio/lingdum.mp3",
		},
	}
}

// SeedEvents is the cultural calendar. Events reference a monastery by
// display name, not id; the linkage is resolved at read time.
func SeedEvents() []dm.Event {
	return []dm.Event{
		{
			ID: "losar-2026", Title: "Losar",
			Date:     time.Date(2026, time.February, 18, 0, 0, 0, 0, ist),
			Location: "Rumtek, East Sikkim",
			Description: "Tibetan New Year, marked with cham dances, butter sculptures and family feasts across Sikkim's monasteries.",
			MonasteryName: "Rumtek Monastery",
		},
		{
			ID: "bhumchu-2026", Title: "Bhumchu Festival",
			Date:     time.Date(2026, time.March, 3, 0, 0, 0, 0, ist),
			Location: "Tashiding, West Sikkim",
			Description: "Opening of the sacred water vase at Tashiding; the water level is read as an omen for the year ahead.",
			MonasteryName: "Tashiding Monastery",
		},
		{
			ID: "saga-dawa-2026", Title: "Saga Dawa",
			Date:     time.Date(2026, time.May, 31, 0, 0, 0, 0, ist),
			Location: "Gangtok, East Sikkim",
			Description: "The triple-blessed festival of Buddha's birth, enlightenment and parinirvana, with scripture processions through Gangtok.",
			MonasteryName: "Enchey Monastery",
		},
		{
			ID: "drukpa-tshechi-2026", Title: "Drukpa Tshechi",
			Date:     time.Date(2026, time.July, 18, 0, 0, 0, 0, ist),
			Location: "Gangtok, East Sikkim",
			Description: "Commemorates the Buddha's first sermon at Sarnath; prayers at Deer Park and monasteries around Gangtok.",
		},
		{
			ID: "pang-lhabsol-2026", Title: "Pang Lhabsol",
			Date:     time.Date(2026, time.August, 26, 0, 0, 0, 0, ist),
			Location: "Ravangla, South Sikkim",
			Description: "Worship of Mount Khangchendzonga as guardian deity, with the dramatic Pangtoed warrior dance.",
			MonasteryName: "Ralang Monastery",
		},
		{
			ID: "kagyed-2026", Title: "Kagyed Dance",
			Date:     time.Date(2026, time.December, 6, 0, 0, 0, 0, ist),
			Location: "Gangtok, East Sikkim",
			Description: "Masked cham dance dramatizing the destruction of evil forces ahead of Losoong.",
			MonasteryName: "Enchey Monastery",
		},
		{
			ID: "losoong-2026", Title: "Losoong (Namsoong)",
			Date:     time.Date(2026, time.December, 18, 0, 0, 0, 0, ist),
			Location: "Phodong, North Sikkim",
			Description: "Sikkimese harvest new year with archery contests and cham dances at the Kagyu monasteries.",
			MonasteryName: "Phodong Monastery",
		},
	}
}
