package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"rx-prescription-api/config"
	"rx-prescription-api/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

// OpenFDAService queries the public drug-label API for medicine catalog hits.
// Callers are expected to fall back to the local catalog when Search fails.
type OpenFDAService struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewOpenFDAService(cfg config.OpenFDAConfig, log *logrus.Logger) *OpenFDAService {
	return &OpenFDAService{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// drugLabelResult mirrors the subset of the openfda label payload we read
type drugLabelResult struct {
	Results []struct {
		OpenFDA struct {
			BrandName        []string `json:"brand_name"`
			GenericName      []string `json:"generic_name"`
			ManufacturerName []string `json:"manufacturer_name"`
			Strength         []string `json:"strength"`
			DosageForm       []string `json:"dosage_form"`
		} `json:"openfda"`
	} `json:"results"`
}

func (s *OpenFDAService) Search(ctx context.Context, search string) ([]dto.ExternalMedicineResponse, error) {
	query := url.Values{}
	query.Set("search", fmt.Sprintf("openfda.brand_name:%q", search))
	query.Set("limit", "10")

	endpoint := s.baseURL + "/drug/label.json?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfda returned status %d", resp.StatusCode)
	}

	var payload drugLabelResult
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	medicines := make([]dto.ExternalMedicineResponse, 0, len(payload.Results))
	for _, result := range payload.Results {
		medicines = append(medicines, dto.ExternalMedicineResponse{
			Name:         first(result.OpenFDA.BrandName, "Unknown"),
			GenericName:  first(result.OpenFDA.GenericName, ""),
			Brand:        first(result.OpenFDA.ManufacturerName, ""),
			Strength:     first(result.OpenFDA.Strength, ""),
			Form:         first(result.OpenFDA.DosageForm, ""),
			Manufacturer: first(result.OpenFDA.ManufacturerName, ""),
		})
	}

	return medicines, nil
}

func first(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
