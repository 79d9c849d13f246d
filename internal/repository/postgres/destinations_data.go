package postgres

import "tripLogger/domain"

// referenceDestinations is the seeded destination catalog. Order matters: it
// becomes the id order and therefore the ranking tie-break order.
var referenceDestinations = []domain.Destination{
	{Name: "Paris", Country: "France", AvgBudget: 5500, AvgRating: 4.9, Popularity: 100, Description: "City of Light - iconic monuments and cuisine"},
	{Name: "London", Country: "United Kingdom", AvgBudget: 5800, AvgRating: 4.9, Popularity: 95, Description: "Historic capital with world-class museums"},
	{Name: "Rome", Country: "Italy", AvgBudget: 5200, AvgRating: 4.9, Popularity: 98, Description: "Ancient history and Renaissance art"},
	{Name: "Barcelona", Country: "Spain", AvgBudget: 4800, AvgRating: 4.9, Popularity: 90, Description: "Beach city with Gaudí architecture"},
	{Name: "Venice", Country: "Italy", AvgBudget: 6500, AvgRating: 4.9, Popularity: 92, Description: "Romantic canals and historic architecture"},
	{Name: "Florence", Country: "Italy", AvgBudget: 4500, AvgRating: 4.9, Popularity: 89, Description: "Renaissance art and Tuscan wine"},
	{Name: "Vienna", Country: "Austria", AvgBudget: 5000, AvgRating: 4.8, Popularity: 87, Description: "Imperial palaces and classical music"},
	{Name: "Amsterdam", Country: "Netherlands", AvgBudget: 4200, AvgRating: 4.8, Popularity: 88, Description: "Canals, cycling, and vibrant culture"},
	{Name: "Berlin", Country: "Germany", AvgBudget: 3500, AvgRating: 4.7, Popularity: 85, Description: "History, art, and innovative nightlife"},
	{Name: "Prague", Country: "Czech Republic", AvgBudget: 2200, AvgRating: 4.7, Popularity: 82, Description: "Medieval charm and affordable luxury"},
	{Name: "Budapest", Country: "Hungary", AvgBudget: 2400, AvgRating: 4.7, Popularity: 83, Description: "Thermal baths and Danube beauty"},
	{Name: "Edinburgh", Country: "United Kingdom", AvgBudget: 4000, AvgRating: 4.7, Popularity: 84, Description: "Medieval castle and Scottish culture"},
	{Name: "Lisbon", Country: "Portugal", AvgBudget: 2800, AvgRating: 4.6, Popularity: 81, Description: "Coastal charm with historic tiles"},
	{Name: "Dublin", Country: "Ireland", AvgBudget: 3200, AvgRating: 4.6, Popularity: 79, Description: "Literary heritage and lively pubs"},
	{Name: "Stockholm", Country: "Sweden", AvgBudget: 4500, AvgRating: 4.6, Popularity: 86, Description: "Island city with Nordic design"},
	{Name: "Copenhagen", Country: "Denmark", AvgBudget: 4200, AvgRating: 4.6, Popularity: 82, Description: "Design capital with hygge culture"},
	{Name: "Krakow", Country: "Poland", AvgBudget: 1800, AvgRating: 4.7, Popularity: 78, Description: "Medieval old town and Jewish quarter"},
	{Name: "Seville", Country: "Spain", AvgBudget: 2200, AvgRating: 4.7, Popularity: 80, Description: "Flamenco, tapas, and Moorish heritage"},
	{Name: "Milan", Country: "Italy", AvgBudget: 4600, AvgRating: 4.6, Popularity: 78, Description: "Fashion capital and Duomo cathedral"},
	{Name: "Zurich", Country: "Switzerland", AvgBudget: 6000, AvgRating: 4.7, Popularity: 81, Description: "Luxury and Alpine views"},
	{Name: "Geneva", Country: "Switzerland", AvgBudget: 5800, AvgRating: 4.6, Popularity: 79, Description: "International hub with lake views"},
	{Name: "Naples", Country: "Italy", AvgBudget: 1800, AvgRating: 4.4, Popularity: 74, Description: "Pizza, passion, and historic streets"},
	{Name: "Tokyo", Country: "Japan", AvgBudget: 6800, AvgRating: 4.8, Popularity: 95, Description: "Modern metropolis with ancient temples"},
	{Name: "Singapore", Country: "Singapore", AvgBudget: 5500, AvgRating: 4.8, Popularity: 88, Description: "Ultra-modern city-state with multicultural blend"},
	{Name: "Hong Kong", Country: "Hong Kong", AvgBudget: 6000, AvgRating: 4.8, Popularity: 89, Description: "Vertical city with stunning harbor"},
	{Name: "Bali", Country: "Indonesia", AvgBudget: 3200, AvgRating: 4.9, Popularity: 91, Description: "Tropical paradise with Hindu temples"},
	{Name: "Seoul", Country: "South Korea", AvgBudget: 3800, AvgRating: 4.8, Popularity: 86, Description: "K-pop culture and tech innovation"},
	{Name: "Bangkok", Country: "Thailand", AvgBudget: 2600, AvgRating: 4.8, Popularity: 92, Description: "Bustling streets, temples, and street food"},
	{Name: "Siem Reap", Country: "Cambodia", AvgBudget: 1600, AvgRating: 4.8, Popularity: 87, Description: "Angkor temples and local culture"},
	{Name: "Hanoi", Country: "Vietnam", AvgBudget: 1400, AvgRating: 4.7, Popularity: 84, Description: "Historic streets and French colonial charm"},
	{Name: "Ho Chi Minh City", Country: "Vietnam", AvgBudget: 1500, AvgRating: 4.6, Popularity: 83, Description: "Bustling energy and street markets"},
	{Name: "Phuket", Country: "Thailand", AvgBudget: 2000, AvgRating: 4.7, Popularity: 85, Description: "Beach resort with vibrant nightlife"},
	{Name: "Chiang Mai", Country: "Thailand", AvgBudget: 1300, AvgRating: 4.8, Popularity: 81, Description: "Temples and trekking in the mountains"},
	{Name: "Manila", Country: "Philippines", AvgBudget: 1200, AvgRating: 4.3, Popularity: 72, Description: "Chaotic energy and beach nearby"},
	{Name: "Kuala Lumpur", Country: "Malaysia", AvgBudget: 1800, AvgRating: 4.6, Popularity: 80, Description: "Twin towers and colonial heritage"},
	{Name: "Jaipur", Country: "India", AvgBudget: 1400, AvgRating: 4.6, Popularity: 78, Description: "Pink city with majestic forts"},
	{Name: "Agra", Country: "India", AvgBudget: 1300, AvgRating: 4.9, Popularity: 80, Description: "Taj Mahal and romantic sunsets"},
	{Name: "Delhi", Country: "India", AvgBudget: 1200, AvgRating: 4.4, Popularity: 74, Description: "Chaotic capital with Mughal architecture"},
	{Name: "Goa", Country: "India", AvgBudget: 1500, AvgRating: 4.7, Popularity: 82, Description: "Beaches, churches, and Portuguese heritage"},
	{Name: "Darjeeling", Country: "India", AvgBudget: 1200, AvgRating: 4.7, Popularity: 75, Description: "Tea plantations and Himalayan views"},
	{Name: "Kathmandu", Country: "Nepal", AvgBudget: 1100, AvgRating: 4.7, Popularity: 79, Description: "Mountain temples and spiritual energy"},
	{Name: "Pokhara", Country: "Nepal", AvgBudget: 900, AvgRating: 4.8, Popularity: 76, Description: "Lakes and Annapurna trekking base"},
	{Name: "Yangon", Country: "Myanmar", AvgBudget: 1000, AvgRating: 4.4, Popularity: 70, Description: "Golden pagodas and colonial streets"},
	{Name: "Phnom Penh", Country: "Cambodia", AvgBudget: 1100, AvgRating: 4.2, Popularity: 68, Description: "Historic temples and riverside charm"},
	{Name: "Islamabad", Country: "Pakistan", AvgBudget: 1000, AvgRating: 4.4, Popularity: 68, Description: "Mountain-surrounded capital"},
	{Name: "Lahore", Country: "Pakistan", AvgBudget: 950, AvgRating: 4.3, Popularity: 70, Description: "Mughal gardens and street food"},
	{Name: "Dubai", Country: "United Arab Emirates", AvgBudget: 5500, AvgRating: 4.7, Popularity: 85, Description: "Luxury shopping and desert safaris"},
	{Name: "Abu Dhabi", Country: "United Arab Emirates", AvgBudget: 5200, AvgRating: 4.6, Popularity: 81, Description: "Modern museums and camel racing"},
	{Name: "Jerusalem", Country: "Israel", AvgBudget: 3000, AvgRating: 4.7, Popularity: 82, Description: "Holy sites and historical significance"},
	{Name: "Petra", Country: "Jordan", AvgBudget: 2400, AvgRating: 4.9, Popularity: 84, Description: "Rose-colored ancient city carved in stone"},
	{Name: "Tel Aviv", Country: "Israel", AvgBudget: 3800, AvgRating: 4.6, Popularity: 78, Description: "Beaches and vibrant nightlife"},
	{Name: "Amman", Country: "Jordan", AvgBudget: 1800, AvgRating: 4.5, Popularity: 72, Description: "Ancient Roman ruins and hospitality"},
	{Name: "New York City", Country: "USA", AvgBudget: 6500, AvgRating: 4.8, Popularity: 96, Description: "The city that never sleeps"},
	{Name: "San Francisco", Country: "USA", AvgBudget: 6000, AvgRating: 4.7, Popularity: 87, Description: "Golden Gate and tech culture"},
	{Name: "Los Angeles", Country: "USA", AvgBudget: 5200, AvgRating: 4.6, Popularity: 85, Description: "Beaches, entertainment, and endless sun"},
	{Name: "Miami", Country: "USA", AvgBudget: 4800, AvgRating: 4.6, Popularity: 84, Description: "Beaches, art deco, and Cuban culture"},
	{Name: "Las Vegas", Country: "USA", AvgBudget: 4200, AvgRating: 4.7, Popularity: 88, Description: "Casinos, shows, and desert nightlife"},
	{Name: "New Orleans", Country: "USA", AvgBudget: 3200, AvgRating: 4.8, Popularity: 86, Description: "Jazz, Creole food, and vibrant culture"},
	{Name: "Chicago", Country: "USA", AvgBudget: 3600, AvgRating: 4.7, Popularity: 83, Description: "Architecture, deep dish pizza, and museums"},
	{Name: "Boston", Country: "USA", AvgBudget: 3800, AvgRating: 4.6, Popularity: 79, Description: "Historic Revolutionary War sites"},
	{Name: "Washington DC", Country: "USA", AvgBudget: 3400, AvgRating: 4.7, Popularity: 81, Description: "Monuments, museums, and politics"},
	{Name: "Vancouver", Country: "Canada", AvgBudget: 4500, AvgRating: 4.7, Popularity: 84, Description: "Mountains, ocean, and cosmopolitan culture"},
	{Name: "Montreal", Country: "Canada", AvgBudget: 3200, AvgRating: 4.7, Popularity: 82, Description: "French flair and vibrant nightlife"},
	{Name: "Rio de Janeiro", Country: "Brazil", AvgBudget: 3600, AvgRating: 4.7, Popularity: 89, Description: "Christ the Redeemer and Copacabana"},
	{Name: "Buenos Aires", Country: "Argentina", AvgBudget: 3000, AvgRating: 4.8, Popularity: 88, Description: "Tango, steak, and European elegance"},
	{Name: "Lima", Country: "Peru", AvgBudget: 2600, AvgRating: 4.7, Popularity: 84, Description: "Culinary capital with coastal views"},
	{Name: "Cusco", Country: "Peru", AvgBudget: 2200, AvgRating: 4.8, Popularity: 88, Description: "Gateway to Machu Picchu and Incan history"},
	{Name: "Machu Picchu", Country: "Peru", AvgBudget: 2500, AvgRating: 4.9, Popularity: 90, Description: "Iconic Incan citadel in the clouds"},
	{Name: "Seattle", Country: "USA", AvgBudget: 3400, AvgRating: 4.6, Popularity: 78, Description: "Coffee, tech, and mountain views"},
	{Name: "Portland", Country: "USA", AvgBudget: 2800, AvgRating: 4.6, Popularity: 77, Description: "Quirky culture and food scene"},
	{Name: "Denver", Country: "USA", AvgBudget: 2600, AvgRating: 4.5, Popularity: 76, Description: "Mile-high city with Rocky Mountain access"},
	{Name: "Austin", Country: "USA", AvgBudget: 2900, AvgRating: 4.7, Popularity: 80, Description: "Live music and tech startup culture"},
	{Name: "Nashville", Country: "USA", AvgBudget: 2400, AvgRating: 4.6, Popularity: 75, Description: "Country music capital"},
	{Name: "Toronto", Country: "Canada", AvgBudget: 3800, AvgRating: 4.6, Popularity: 81, Description: "Multicultural Canadian metropolis"},
	{Name: "Cancun", Country: "Mexico", AvgBudget: 3200, AvgRating: 4.6, Popularity: 86, Description: "Beach resort with Mayan ruins nearby"},
	{Name: "Playa del Carmen", Country: "Mexico", AvgBudget: 3000, AvgRating: 4.5, Popularity: 82, Description: "Caribbean beaches and cenotes"},
	{Name: "Puerto Vallarta", Country: "Mexico", AvgBudget: 2800, AvgRating: 4.6, Popularity: 80, Description: "Romantic beach town and nightlife"},
	{Name: "Mexico City", Country: "Mexico", AvgBudget: 2400, AvgRating: 4.7, Popularity: 85, Description: "Ancient pyramids and street art"},
	{Name: "San Juan", Country: "Puerto Rico", AvgBudget: 3400, AvgRating: 4.6, Popularity: 81, Description: "Caribbean island with colonial charm"},
	{Name: "Havana", Country: "Cuba", AvgBudget: 2200, AvgRating: 4.8, Popularity: 86, Description: "Classic cars and Caribbean nostalgia"},
	{Name: "Salvador", Country: "Brazil", AvgBudget: 2000, AvgRating: 4.7, Popularity: 82, Description: "Bahian culture and beach vibes"},
	{Name: "Bogota", Country: "Colombia", AvgBudget: 2100, AvgRating: 4.6, Popularity: 77, Description: "Mountain city with art and culture"},
	{Name: "Cartagena", Country: "Colombia", AvgBudget: 2400, AvgRating: 4.8, Popularity: 83, Description: "Walled colonial city on Caribbean"},
	{Name: "Oaxaca", Country: "Mexico", AvgBudget: 1500, AvgRating: 4.8, Popularity: 81, Description: "Indigenous culture and colorful markets"},
	{Name: "Guatemala City", Country: "Guatemala", AvgBudget: 1200, AvgRating: 4.3, Popularity: 68, Description: "Gateway to Mayan wonders"},
	{Name: "Antigua", Country: "Guatemala", AvgBudget: 1300, AvgRating: 4.8, Popularity: 79, Description: "Colorful colonial architecture"},
	{Name: "San Jose", Country: "Costa Rica", AvgBudget: 2000, AvgRating: 4.6, Popularity: 80, Description: "Central valley and volcanic landscapes"},
	{Name: "Panama City", Country: "Panama", AvgBudget: 1700, AvgRating: 4.4, Popularity: 73, Description: "Canal engineering and tropical vibes"},
	{Name: "Belize City", Country: "Belize", AvgBudget: 1600, AvgRating: 4.4, Popularity: 72, Description: "Caribbean vibes and Mayan sites"},
	{Name: "Quito", Country: "Ecuador", AvgBudget: 1600, AvgRating: 4.6, Popularity: 76, Description: "On the equator with mountain views"},
	{Name: "La Paz", Country: "Bolivia", AvgBudget: 1400, AvgRating: 4.6, Popularity: 77, Description: "High altitude city with indigenous culture"},
	{Name: "Santiago", Country: "Chile", AvgBudget: 2500, AvgRating: 4.6, Popularity: 79, Description: "Modern capital with wine and mountains"},
	{Name: "Atacama Desert", Country: "Chile", AvgBudget: 2100, AvgRating: 4.8, Popularity: 80, Description: "Otherworldly desert landscape"},
	{Name: "Sao Paulo", Country: "Brazil", AvgBudget: 2300, AvgRating: 4.5, Popularity: 75, Description: "Art, food scene, and urban energy"},
	{Name: "Cape Town", Country: "South Africa", AvgBudget: 3400, AvgRating: 4.9, Popularity: 89, Description: "Table Mountain and coastal beauty"},
	{Name: "Masai Mara", Country: "Kenya", AvgBudget: 3200, AvgRating: 4.9, Popularity: 87, Description: "World-renowned safari destination"},
	{Name: "Giza", Country: "Egypt", AvgBudget: 2200, AvgRating: 4.9, Popularity: 85, Description: "Ancient wonders of the world"},
	{Name: "Cairo", Country: "Egypt", AvgBudget: 1800, AvgRating: 4.7, Popularity: 82, Description: "Pyramids, Sphinx, and Nile River"},
	{Name: "Luxor", Country: "Egypt", AvgBudget: 1600, AvgRating: 4.8, Popularity: 80, Description: "Valley of the Kings and Karnak temples"},
	{Name: "Zanzibar", Country: "Tanzania", AvgBudget: 2000, AvgRating: 4.8, Popularity: 83, Description: "Spice island with pristine beaches"},
	{Name: "Marrakech", Country: "Morocco", AvgBudget: 2200, AvgRating: 4.8, Popularity: 85, Description: "Red city with Sahara access"},
	{Name: "Fez", Country: "Morocco", AvgBudget: 1800, AvgRating: 4.7, Popularity: 80, Description: "Medina with ancient leather tanneries"},
	{Name: "Kigali", Country: "Rwanda", AvgBudget: 1900, AvgRating: 4.6, Popularity: 76, Description: "Clean city with mountain gorilla trekking"},
	{Name: "Johannesburg", Country: "South Africa", AvgBudget: 2000, AvgRating: 4.4, Popularity: 73, Description: "Vibrant city with Apartheid history"},
	{Name: "Nairobi", Country: "Kenya", AvgBudget: 1600, AvgRating: 4.5, Popularity: 75, Description: "Gateway to African safaris"},
	{Name: "Tanzania", Country: "Tanzania", AvgBudget: 1900, AvgRating: 4.8, Popularity: 84, Description: "Mount Kilimanjaro and Serengeti"},
	{Name: "Dar es Salaam", Country: "Tanzania", AvgBudget: 1500, AvgRating: 4.5, Popularity: 74, Description: "Port city with Swahili heritage"},
	{Name: "Casablanca", Country: "Morocco", AvgBudget: 1500, AvgRating: 4.6, Popularity: 78, Description: "Coastal city with Hassan II Mosque"},
	{Name: "Tangier", Country: "Morocco", AvgBudget: 1300, AvgRating: 4.5, Popularity: 76, Description: "Gateway between Africa and Europe"},
	{Name: "Essaouira", Country: "Morocco", AvgBudget: 1400, AvgRating: 4.6, Popularity: 77, Description: "Beach town with bohemian vibe"},
	{Name: "Accra", Country: "Ghana", AvgBudget: 1300, AvgRating: 4.4, Popularity: 70, Description: "West African cultural hub"},
	{Name: "Lagos", Country: "Nigeria", AvgBudget: 1400, AvgRating: 4.2, Popularity: 69, Description: "Bustling metropolis on the coast"},
	{Name: "Kampala", Country: "Uganda", AvgBudget: 1200, AvgRating: 4.4, Popularity: 72, Description: "Vibrant capital in the Pearl of Africa"},
	{Name: "Addis Ababa", Country: "Ethiopia", AvgBudget: 900, AvgRating: 4.3, Popularity: 68, Description: "Ancient Orthodox churches"},
	{Name: "Sydney", Country: "Australia", AvgBudget: 5500, AvgRating: 4.8, Popularity: 89, Description: "Opera House and Bondi Beach"},
	{Name: "Queenstown", Country: "New Zealand", AvgBudget: 5200, AvgRating: 4.9, Popularity: 87, Description: "Adrenaline sports and mountain beauty"},
	{Name: "Melbourne", Country: "Australia", AvgBudget: 4800, AvgRating: 4.7, Popularity: 86, Description: "Coffee capital and street art"},
	{Name: "Auckland", Country: "New Zealand", AvgBudget: 4600, AvgRating: 4.7, Popularity: 83, Description: "Gateway to Aotearoa"},
	{Name: "Honolulu", Country: "USA", AvgBudget: 5800, AvgRating: 4.8, Popularity: 87, Description: "Hawaiian beaches and culture"},
	{Name: "Fiji", Country: "Fiji", AvgBudget: 3600, AvgRating: 4.9, Popularity: 88, Description: "Tropical island paradise"},
	{Name: "Bora Bora", Country: "French Polynesia", AvgBudget: 8500, AvgRating: 5.0, Popularity: 89, Description: "Overwater bungalows and lagoon"},
	{Name: "Tahiti", Country: "French Polynesia", AvgBudget: 7500, AvgRating: 4.9, Popularity: 86, Description: "Polynesian culture and beaches"},
	{Name: "Brisbane", Country: "Australia", AvgBudget: 3200, AvgRating: 4.6, Popularity: 81, Description: "Sunny subtropical city"},
	{Name: "Cairns", Country: "Australia", AvgBudget: 3600, AvgRating: 4.8, Popularity: 85, Description: "Gateway to Great Barrier Reef"},
	{Name: "Gold Coast", Country: "Australia", AvgBudget: 3000, AvgRating: 4.7, Popularity: 83, Description: "Beach resort paradise"},
	{Name: "Perth", Country: "Australia", AvgBudget: 3400, AvgRating: 4.6, Popularity: 79, Description: "Isolated Western paradise"},
	{Name: "Hobart", Country: "Australia", AvgBudget: 2800, AvgRating: 4.7, Popularity: 77, Description: "Gateway to Tasmania's wilderness"},
	{Name: "Christchurch", Country: "New Zealand", AvgBudget: 3400, AvgRating: 4.7, Popularity: 80, Description: "Adventure capital of the South Island"},
	{Name: "Samoa", Country: "Samoa", AvgBudget: 2800, AvgRating: 4.8, Popularity: 82, Description: "South Pacific island charm"},
}
