package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	referencedomain "github.com/tikitihq/tikiti/internal/reference/domain"
	"github.com/tikitihq/tikiti/pkg/db"
	"gorm.io/gorm"
)

type eventFixture struct {
	title         string
	description   string
	startsAt      string
	location      string
	venue         string
	price         int64
	imageURL      string
	category      string
	latitude      float64
	longitude     float64
	moodEnergy    eventdomain.MoodEnergy
	moodVibe      string
	moodIntensity int
	isOutdoor     bool
	organizer     string
	company       string
}

var regionFixtures = []referencedomain.Region{
	{Code: "dar-es-salaam", Name: "Dar es Salaam"},
	{Code: "zanzibar", Name: "Zanzibar"},
	{Code: "arusha", Name: "Arusha"},
	{Code: "mwanza", Name: "Mwanza"},
	{Code: "moshi", Name: "Moshi"},
	{Code: "dodoma", Name: "Dodoma"},
}

var eventFixtures = []eventFixture{
	{
		title:       "Diamond Platnumz Live Concert",
		description: "The biggest Tanzanian artist performs his greatest hits in an unforgettable night of music.",
		startsAt:    "2026-10-15T20:00:00+03:00",
		location:    "Dar es Salaam",
		venue:       "Mlimani City Conference Centre",
		price:       25000, imageURL: "/images/concert-stage.png",
		category: eventdomain.CategoryMusic,
		latitude: -6.7924, longitude: 39.2083,
		moodEnergy: eventdomain.MoodEnergyHigh, moodVibe: "energetic", moodIntensity: 9,
		organizer: "Sarah Mwamba", company: "Wasafi Events",
	},
	{
		title:       "Simba SC vs Young Africans",
		description: "The biggest derby in Tanzanian football. Experience the electric atmosphere of this historic rivalry.",
		startsAt:    "2026-10-20T16:00:00+03:00",
		location:    "Dar es Salaam",
		venue:       "Benjamin Mkapa Stadium",
		price:       15000, imageURL: "/images/football-stadium.png",
		category: eventdomain.CategorySports,
		latitude: -6.8235, longitude: 39.2695,
		moodEnergy: eventdomain.MoodEnergyHigh, moodVibe: "social", moodIntensity: 10,
		isOutdoor: true,
		organizer: "John Mbeki", company: "Sports Tanzania",
	},
	{
		title:       "Zanzibar Food Festival",
		description: "Taste the best of Zanzibar cuisine with local and international chefs showcasing their specialties.",
		startsAt:    "2026-11-02T18:00:00+03:00",
		location:    "Stone Town, Zanzibar",
		venue:       "Forodhani Gardens",
		price:       20000, imageURL: "/images/food-festival.png",
		category: eventdomain.CategoryFood,
		latitude: -6.1659, longitude: 39.1917,
		moodEnergy: eventdomain.MoodEnergyMedium, moodVibe: "cultural", moodIntensity: 6,
		isOutdoor: true,
		organizer: "Fatma Ali", company: "Zanzibar Cuisine Co",
	},
	{
		title:       "Idris Sultan Comedy Night",
		description: "Join Tanzania's favorite comedian for an evening of laughter and entertainment.",
		startsAt:    "2026-10-25T19:30:00+03:00",
		location:    "Dar es Salaam",
		venue:       "Hyatt Regency Kilimanjaro",
		price:       18000, imageURL: "/images/comedy-club.png",
		category: eventdomain.CategoryComedy,
		latitude: -6.8000, longitude: 39.2833,
		moodEnergy: eventdomain.MoodEnergyMedium, moodVibe: "social", moodIntensity: 7,
		organizer: "Mohamed Hassan", company: "Laugh Factory TZ",
	},
	{
		title:       "East Africa Business Summit",
		description: "Network with leading entrepreneurs and business leaders from across East Africa.",
		startsAt:    "2026-11-10T09:00:00+03:00",
		location:    "Arusha",
		venue:       "Arusha International Conference Centre",
		price:       50000, imageURL: "/images/business-conference.png",
		category: eventdomain.CategoryBusiness,
		latitude: -3.3869, longitude: 36.6830,
		moodEnergy: eventdomain.MoodEnergyLow, moodVibe: "professional", moodIntensity: 4,
		organizer: "Grace Kimaro", company: "EAC Business Network",
	},
	{
		title:       "Harmonize & Rayvanny Concert",
		description: "Two of Tanzania's biggest stars share the stage for an incredible musical experience.",
		startsAt:    "2026-11-15T20:30:00+03:00",
		location:    "Mwanza",
		venue:       "CCM Kirumba Stadium",
		price:       22000, imageURL: "/images/concert-stage.png",
		category: eventdomain.CategoryMusic,
		latitude: -2.5164, longitude: 32.9175,
		moodEnergy: eventdomain.MoodEnergyHigh, moodVibe: "energetic", moodIntensity: 8,
		isOutdoor: true,
		organizer: "James Mwalimu", company: "Lake Music Events",
	},
	{
		title:       "Kilimanjaro Marathon",
		description: "Challenge yourself in the shadow of Africa's highest peak in this epic marathon event.",
		startsAt:    "2026-12-01T06:00:00+03:00",
		location:    "Moshi",
		venue:       "Moshi Town",
		price:       35000, imageURL: "/images/marathon.png",
		category: eventdomain.CategorySports,
		latitude: -3.3398, longitude: 37.3407,
		moodEnergy: eventdomain.MoodEnergyMedium, moodVibe: "energetic", moodIntensity: 6,
		isOutdoor: true,
		organizer: "Peter Lyimo", company: "Kilimanjaro Sports",
	},
	{
		title:       "Swahili Street Food Tour",
		description: "Explore the authentic flavors of Tanzania with guided food tours through local markets.",
		startsAt:    "2026-11-25T17:00:00+03:00",
		location:    "Dar es Salaam",
		venue:       "Kariakoo Market Area",
		price:       12000, imageURL: "/images/food-festival.png",
		category: eventdomain.CategoryFood,
		latitude: -6.8161, longitude: 39.2626,
		moodEnergy: eventdomain.MoodEnergyMedium, moodVibe: "cultural", moodIntensity: 5,
		isOutdoor: true,
		organizer: "Amina Juma", company: "Street Food Tours TZ",
	},
	{
		title:       "Mchafuko Comedy Club",
		description: "Discover new comedic talent in Tanzania's premier comedy showcase event.",
		startsAt:    "2026-11-05T20:00:00+03:00",
		location:    "Dar es Salaam",
		venue:       "Slipway Entertainment Centre",
		price:       15000, imageURL: "/images/comedy-club.png",
		category: eventdomain.CategoryComedy,
		latitude: -6.7908, longitude: 39.2694,
		moodEnergy: eventdomain.MoodEnergyMedium, moodVibe: "relaxed", moodIntensity: 6,
		organizer: "David Mwakasege", company: "Mchafuko Entertainment",
	},
	{
		title:       "Tanzania Tech Startup Pitch",
		description: "Watch innovative startups pitch their ideas to investors and industry experts.",
		startsAt:    "2026-12-15T14:00:00+03:00",
		location:    "Dar es Salaam",
		venue:       "Kempinski Hotel",
		price:       30000, imageURL: "/images/business-conference.png",
		category: eventdomain.CategoryBusiness,
		latitude: -6.7885, longitude: 39.2694,
		moodEnergy: eventdomain.MoodEnergyLow, moodVibe: "professional", moodIntensity: 5,
		organizer: "Rebecca Mtei", company: "Tanzania Innovation Hub",
	},
}

// EnsureCatalog seeds the region reference data and, when the catalog is
// empty, the launch event lineup. Safe to run on every startup.
func EnsureCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureRegionsTx(ctx, tx); err != nil {
			return err
		}
		return ensureEventsTx(ctx, tx)
	})
}

func ensureRegionsTx(ctx context.Context, tx *gorm.DB) error {
	for _, region := range regionFixtures {
		var count int64
		if err := tx.WithContext(ctx).
			Model(&referencedomain.Region{}).
			Where("code = ?", region.Code).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		region.CreatedAt = time.Now().UTC()
		if err := tx.WithContext(ctx).Create(&region).Error; err != nil {
			// Another replica may have seeded the same region concurrently.
			if db.IsDuplicateKeyErr(err) {
				continue
			}
			return err
		}
	}
	return nil
}

func ensureEventsTx(ctx context.Context, tx *gorm.DB) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&eventdomain.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Stagger created_at so cursor pagination over the seed data is stable.
	base := time.Now().UTC().Add(-time.Duration(len(eventFixtures)) * time.Minute)
	for i, fixture := range eventFixtures {
		startsAt, err := time.Parse(time.RFC3339, fixture.startsAt)
		if err != nil {
			return err
		}

		createdAt := base.Add(time.Duration(i) * time.Minute)
		event := eventdomain.Event{
			ID:               uuid.NewString(),
			Slug:             slug.Make(fixture.title),
			Title:            fixture.title,
			Description:      fixture.description,
			StartsAt:         startsAt.UTC(),
			Location:         fixture.location,
			Venue:            fixture.venue,
			Price:            decimal.NewFromInt(fixture.price),
			ImageURL:         fixture.imageURL,
			Category:         fixture.category,
			Latitude:         fixture.latitude,
			Longitude:        fixture.longitude,
			MoodEnergy:       fixture.moodEnergy,
			MoodVibe:         fixture.moodVibe,
			MoodIntensity:    fixture.moodIntensity,
			IsOutdoor:        fixture.isOutdoor,
			OrganizerName:    fixture.organizer,
			OrganizerCompany: fixture.company,
			CreatedAt:        createdAt,
			UpdatedAt:        createdAt,
		}
		if err := tx.WithContext(ctx).Create(&event).Error; err != nil {
			return err
		}
	}
	return nil
}
