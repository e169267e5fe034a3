package fiber

import (
	"growth-dashboard/internal/chart/geometry"
	"growth-dashboard/internal/growth/core/domain"
)

// LoadErrorMessage is reported in place of data when the source is unreadable.
const LoadErrorMessage = "Failed to load user data"

type PointResponse struct {
	Date  string `json:"date" example:"2024-01-15"`
	Value int    `json:"value" example:"42"`
}

type GrowthResponse struct {
	Range                 string          `json:"range" example:"30days"`
	CumulativeData        []PointResponse `json:"cumulativeData"`
	GrowthRateData        []PointResponse `json:"growthRateData"`
	MonthlyGrowthRateData []PointResponse `json:"monthlyGrowthRateData"`
	Error                 *string         `json:"error" swaggertype:"string" example:"Failed to load user data"`
	Accepted              int             `json:"accepted" example:"1200"`
	Skipped               int             `json:"skipped" example:"3"`
}

type ChartResponse struct {
	Chart    string             `json:"chart" example:"cumulative"`
	Title    string             `json:"title" example:"Cumulative Growth"`
	Range    string             `json:"range" example:"all"`
	NoData   bool               `json:"noData"`
	Error    *string            `json:"error,omitempty" swaggertype:"string"`
	Geometry *geometry.Geometry `json:"geometry,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_range"`
	Message string `json:"message" example:"invalid time filter: \"5days\""`
}

func toPointResponses(series domain.Series) []PointResponse {
	out := make([]PointResponse, 0, len(series))
	for _, p := range series {
		out = append(out, PointResponse{Date: p.Key(), Value: p.Value})
	}
	return out
}
