package domain

import "time"

// CREATE TABLE public.trips (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id      BIGINT NOT NULL REFERENCES users(id),
//     destination  TEXT NOT NULL,
//     start_date   DATE NOT NULL,
//     end_date     DATE NOT NULL,
//     budget       NUMERIC NOT NULL CHECK (budget > 0),
//     rating       NUMERIC NOT NULL CHECK (rating >= 0 AND rating <= 5),
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type Trip struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"-"`
	Destination string    `gorm:"column:destination;type:text;not null" json:"destination"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null" json:"end_date"`
	Budget      float64   `gorm:"column:budget;not null;check:budget > 0" json:"budget"`
	Rating      float64   `gorm:"column:rating;not null;check:rating >= 0 AND rating <= 5" json:"rating"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Trip) TableName() string {
	return "trips"
}

type TripStats struct {
	TripsByMonth         map[string]int         `json:"trips_by_month"`
	FavoriteDestinations []DestinationFrequency `json:"favorite_destinations"`
}

type DestinationFrequency struct {
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

type TripSpending struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}
