// Package visitor records site visits and aggregates them for the dashboard
// charts. Visit rows are append-only; aggregation happens at read time.
package visitor

import (
	"context"
	"net"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/akvfolio/portfolio-core/internal/models"
	"github.com/akvfolio/portfolio-core/internal/pkg/geoip"
)

// ChartData pairs aggregation labels with their counts, index-aligned.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// Counts summarizes visit volume across calendar windows.
type Counts struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
	Month int64 `json:"month"`
}

var dayLabels = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type Service struct {
	db       *gorm.DB
	resolver geoip.Resolver

	// fallback labels visits whose country lookup failed, and is the bucket
	// empty countries fold into during aggregation.
	fallback string
	// devIP replaces loopback caller addresses before lookup.
	devIP string

	now func() time.Time
}

func NewService(db *gorm.DB, resolver geoip.Resolver, fallbackCountry, devPlaceholderIP string) *Service {
	return &Service{
		db:       db,
		resolver: resolver,
		fallback: fallbackCountry,
		devIP:    devPlaceholderIP,
		now:      time.Now,
	}
}

// Track records a visit from ip, resolving its country. Lookup failures never
// fail the request; the visit is stored with the fallback country instead.
func (s *Service) Track(ctx context.Context, ip string) (*models.VisitorModel, Counts, error) {
	lookupIP := ip
	if isLoopback(ip) {
		lookupIP = s.devIP
	}

	country := s.fallback
	if s.resolver != nil {
		if resolved, err := s.resolver.Country(ctx, lookupIP); err == nil && resolved != "" {
			country = resolved
		}
	}

	visit := models.VisitorModel{IP: ip, Country: country, VisitedAt: s.now()}
	if err := s.db.Create(&visit).Error; err != nil {
		return nil, Counts{}, err
	}

	counts, err := s.CountVisits()
	if err != nil {
		return nil, Counts{}, err
	}
	return &visit, counts, nil
}

// CountVisits returns total, today and current-month visit counts. Window
// starts are taken from the server's local calendar.
func (s *Service) CountVisits() (Counts, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var c Counts
	if err := s.db.Model(&models.VisitorModel{}).Count(&c.Total).Error; err != nil {
		return Counts{}, err
	}
	if err := s.db.Model(&models.VisitorModel{}).Where("visited_at >= ?", startOfDay).Count(&c.Today).Error; err != nil {
		return Counts{}, err
	}
	if err := s.db.Model(&models.VisitorModel{}).Where("visited_at >= ?", startOfMonth).Count(&c.Month).Error; err != nil {
		return Counts{}, err
	}
	return c, nil
}

// ByCountry aggregates visits per country, most visited first. Rows with an
// empty country fold into the fallback bucket. Ties order by label.
func (s *Service) ByCountry() (*ChartData, error) {
	var visits []models.VisitorModel
	if err := s.db.Select("country").Find(&visits).Error; err != nil {
		return nil, err
	}

	buckets := map[string]int64{}
	for _, v := range visits {
		label := v.Country
		if label == "" {
			label = s.fallback
		}
		buckets[label]++
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if buckets[labels[i]] != buckets[labels[j]] {
			return buckets[labels[i]] > buckets[labels[j]]
		}
		return labels[i] < labels[j]
	})

	data := &ChartData{Labels: labels, Values: make([]int64, len(labels))}
	for i, label := range labels {
		data.Values[i] = buckets[label]
	}
	return data, nil
}

// ByDayOfWeek aggregates visits into seven fixed Sunday..Saturday buckets.
// Days without visits stay at zero.
func (s *Service) ByDayOfWeek() (*ChartData, error) {
	var visits []models.VisitorModel
	if err := s.db.Select("visited_at").Find(&visits).Error; err != nil {
		return nil, err
	}

	values := make([]int64, len(dayLabels))
	for _, v := range visits {
		values[int(v.VisitedAt.Weekday())]++
	}
	return &ChartData{Labels: dayLabels, Values: values}, nil
}

func isLoopback(ip string) bool {
	if ip == "" {
		return true
	}
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}
