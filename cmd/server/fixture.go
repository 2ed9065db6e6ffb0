package main

import "github.com/wayfarer/planner/internal/poi"

// demoCatalog is a small, fixed set of Paris-area POIs used as the
// demo server's in-memory maut.CatalogOracle. Real deployments wire
// poi/memcatalog aside and supply their own oracle instead.
func demoCatalog() []poi.POI {
	allWeek := map[string][]string{
		poi.Monday:    {"9:00 am-6:00 pm"},
		poi.Tuesday:   {"9:00 am-6:00 pm"},
		poi.Wednesday: {"9:00 am-6:00 pm"},
		poi.Thursday:  {"9:00 am-6:00 pm"},
		poi.Friday:    {"9:00 am-6:00 pm"},
		poi.Saturday:  {"9:00 am-6:00 pm"},
		poi.Sunday:    {"closed"},
	}
	mealHours := map[string][]string{
		poi.Monday:    {"11:00 am-10:00 pm"},
		poi.Tuesday:   {"11:00 am-10:00 pm"},
		poi.Wednesday: {"11:00 am-10:00 pm"},
		poi.Thursday:  {"11:00 am-10:00 pm"},
		poi.Friday:    {"11:00 am-11:00 pm"},
		poi.Saturday:  {"11:00 am-11:00 pm"},
		poi.Sunday:    {"11:00 am-10:00 pm"},
	}
	always := map[string][]string{
		poi.Monday: {"open 24 hours"}, poi.Tuesday: {"open 24 hours"}, poi.Wednesday: {"open 24 hours"},
		poi.Thursday: {"open 24 hours"}, poi.Friday: {"open 24 hours"}, poi.Saturday: {"open 24 hours"},
		poi.Sunday: {"open 24 hours"},
	}

	return []poi.POI{
		{
			ID: "louvre", Name: "Louvre Museum",
			Roles: []poi.Role{poi.RoleAttraction}, Themes: []string{"cultural_history", "art"},
			Coordinates: poi.Coordinates{Lat: 48.8606, Lon: 2.3376, Set: true},
			Rating:      poi.Rating{Value: 4.7, Known: true}, ReviewCount: poi.ReviewCount{Value: 250000, Known: true},
			PriceLevel: poi.PriceLevel{Value: 2, Known: true},
			Attributes: poi.Attributes{WheelchairEntrance: true, KidsFriendly: true},
			OpenHours:  allWeek,
		},
		{
			ID: "eiffel-tower", Name: "Eiffel Tower",
			Roles: []poi.Role{poi.RoleAttraction}, Themes: []string{"landmark", "cultural_history"},
			Coordinates: poi.Coordinates{Lat: 48.8584, Lon: 2.2945, Set: true},
			Rating:      poi.Rating{Value: 4.6, Known: true}, ReviewCount: poi.ReviewCount{Value: 320000, Known: true},
			PriceLevel: poi.PriceLevel{Value: 3, Known: true},
			Attributes: poi.Attributes{KidsFriendly: true},
			OpenHours:  always,
		},
		{
			ID: "montmartre", Name: "Montmartre & Sacré-Cœur",
			Roles: []poi.Role{poi.RoleAttraction}, Themes: []string{"nature", "cultural_history"},
			Coordinates: poi.Coordinates{Lat: 48.8867, Lon: 2.3431, Set: true},
			Rating:      poi.Rating{Value: 4.5, Known: true}, ReviewCount: poi.ReviewCount{Value: 90000, Known: true},
			PriceLevel: poi.PriceLevel{Value: 1, Known: true},
			OpenHours:  always,
		},
		{
			ID: "musee-orsay", Name: "Musée d'Orsay",
			Roles: []poi.Role{poi.RoleAttraction}, Themes: []string{"art", "cultural_history"},
			Coordinates: poi.Coordinates{Lat: 48.8600, Lon: 2.3266, Set: true},
			Rating:      poi.Rating{Value: 4.6, Known: true}, ReviewCount: poi.ReviewCount{Value: 80000, Known: true},
			PriceLevel: poi.PriceLevel{Value: 2, Known: true},
			Attributes: poi.Attributes{WheelchairEntrance: true},
			OpenHours:  allWeek,
		},
		{
			ID: "luxembourg-gardens", Name: "Jardin du Luxembourg",
			Roles: []poi.Role{poi.RoleAttraction}, Themes: []string{"nature", "family"},
			Coordinates: poi.Coordinates{Lat: 48.8462, Lon: 2.3372, Set: true},
			Rating:      poi.Rating{Value: 4.7, Known: true}, ReviewCount: poi.ReviewCount{Value: 60000, Known: true},
			PriceLevel: poi.PriceLevel{Value: 1, Known: true},
			Attributes: poi.Attributes{KidsFriendly: true, PetsFriendly: true, WheelchairEntrance: true},
			OpenHours:  always,
		},
		{
			ID: "cafe-flore", Name: "Café de Flore",
			Roles: []poi.Role{poi.RoleMeal}, Themes: []string{"food"},
			Coordinates: poi.Coordinates{Lat: 48.8540, Lon: 2.3328, Set: true},
			Rating:      poi.Rating{Value: 4.2, Known: true}, ReviewCount: poi.ReviewCount{Value: 12000, Known: true},
			PriceLevel: poi.PriceLevel{Value: 3, Known: true},
			Attributes: poi.Attributes{VegetarianOptions: true},
			OpenHours:  mealHours,
		},
		{
			ID: "le-petit-marche", Name: "Le Petit Marché",
			Roles: []poi.Role{poi.RoleMeal}, Themes: []string{"food"},
			Coordinates: poi.Coordinates{Lat: 48.8589, Lon: 2.3644, Set: true},
			Rating:      poi.Rating{Value: 4.4, Known: true}, ReviewCount: poi.ReviewCount{Value: 3400, Known: true},
			PriceLevel: poi.PriceLevel{Value: 2, Known: true},
			Attributes: poi.Attributes{HalalFood: true, VeganOptions: true},
			OpenHours:  mealHours,
		},
		{
			ID: "bistrot-paul-bert", Name: "Bistrot Paul Bert",
			Roles: []poi.Role{poi.RoleMeal}, Themes: []string{"food"},
			Coordinates: poi.Coordinates{Lat: 48.8533, Lon: 2.3806, Set: true},
			Rating:      poi.Rating{Value: 4.5, Known: true}, ReviewCount: poi.ReviewCount{Value: 4200, Known: true},
			PriceLevel: poi.PriceLevel{Value: 2, Known: true},
			OpenHours:  mealHours,
		},
		{
			ID: "breizh-cafe", Name: "Breizh Café",
			Roles: []poi.Role{poi.RoleMeal}, Themes: []string{"food"},
			Coordinates: poi.Coordinates{Lat: 48.8614, Lon: 2.3622, Set: true},
			Rating:      poi.Rating{Value: 4.3, Known: true}, ReviewCount: poi.ReviewCount{Value: 5100, Known: true},
			PriceLevel: poi.PriceLevel{Value: 2, Known: true},
			Attributes: poi.Attributes{VegetarianOptions: true, KidsFriendly: true},
			OpenHours:  mealHours,
		},
		{
			ID: "hotel-lutetia", Name: "Hôtel Lutetia",
			Roles: []poi.Role{poi.RoleAccommodation}, Themes: []string{"lodging"},
			Coordinates: poi.Coordinates{Lat: 48.8514, Lon: 2.3265, Set: true},
			Rating:      poi.Rating{Value: 4.7, Known: true}, ReviewCount: poi.ReviewCount{Value: 2200, Known: true},
			PriceLevel: poi.PriceLevel{Value: 4, Known: true},
			Attributes: poi.Attributes{WheelchairEntrance: true, WheelchairSeating: true, WheelchairToilet: true, PetsFriendly: true},
			OpenHours:  always,
		},
		{
			ID: "hotel-ibis-bastille", Name: "Ibis Paris Bastille",
			Roles: []poi.Role{poi.RoleAccommodation}, Themes: []string{"lodging"},
			Coordinates: poi.Coordinates{Lat: 48.8530, Lon: 2.3707, Set: true},
			Rating:      poi.Rating{Value: 4.0, Known: true}, ReviewCount: poi.ReviewCount{Value: 1500, Known: true},
			PriceLevel: poi.PriceLevel{Value: 1, Known: true},
			OpenHours:  always,
		},
	}
}
