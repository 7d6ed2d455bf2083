package meta

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// advantageAliases é a tabela ordenada de variantes conhecidas do sinal de
// expansão de público. A plataforma renomeou o campo entre versões da API;
// a primeira variante presente no spec decide o valor.
var advantageAliases = []struct {
	name   string
	detect func(t *metadomain.RawTargeting) (enabled, present bool)
}{
	{
		name: "targeting_automation.advantage_audience",
		detect: func(t *metadomain.RawTargeting) (bool, bool) {
			if t.TargetingAutomation == nil {
				return false, false
			}
			return t.TargetingAutomation.AdvantageAudience == 1, true
		},
	},
	{
		name: "targeting_optimization",
		detect: func(t *metadomain.RawTargeting) (bool, bool) {
			if t.TargetingOptimization == "" {
				return false, false
			}
			return t.TargetingOptimization != "none", true
		},
	},
	{
		name: "targeting_expansion.expansion",
		detect: func(t *metadomain.RawTargeting) (bool, bool) {
			if t.DetailedTargetingExpansion == nil {
				return false, false
			}
			return t.DetailedTargetingExpansion.Expansion == 1, true
		},
	},
}

// resolveAudience converte o spec de targeting bruto no público resolvido do
// conjunto: lista estruturada de localizações, string formatada no estilo do
// gerenciador de anúncios e listas de interesses/públicos. Targeting sem
// geo_locations formata como "worldwide".
func (s *MetaIntegrator) resolveAudience(token string, targeting *metadomain.RawTargeting) *domain.Audience {
	audience := &domain.Audience{
		Formatted: "worldwide",
		Locations: make([]*domain.LocationEntry, 0),
	}

	if targeting == nil {
		return audience
	}

	audience.AgeMin = targeting.AgeMin
	audience.AgeMax = targeting.AgeMax
	audience.Gender = genderFromTargeting(targeting.Genders)
	audience.AdvantageAudience = detectAdvantageAudience(targeting)

	collectTargetingLists(targeting, audience)

	if targeting.GeoLocations != nil {
		audience.ZipCodes = s.resolveZipCodes(token, targeting.GeoLocations.Zips)
		audience.Locations = buildLocationEntries(targeting.GeoLocations, audience.ZipCodes)
		audience.Formatted = formatLocations(audience.Locations, audience.ZipCodes)
	}

	if targeting.ExcludedGeoLocations != nil {
		// Exclusões não passam pelo lookup de códigos postais; os nomes já
		// presentes no spec bastam para a exibição
		audience.ExcludedLocations = buildLocationEntries(targeting.ExcludedGeoLocations, nil)
	}

	return audience
}

// detectAdvantageAudience percorre a tabela de variantes em ordem de
// prioridade e retorna o valor da primeira presente
func detectAdvantageAudience(targeting *metadomain.RawTargeting) bool {
	for _, alias := range advantageAliases {
		if enabled, present := alias.detect(targeting); present {
			return enabled
		}
	}

	return false
}

// collectTargetingLists extrai interesses, comportamentos, demografias e
// públicos tanto dos campos diretos quanto dos grupos do flexible_spec, e as
// exclusões do sub-objeto exclusions
func collectTargetingLists(targeting *metadomain.RawTargeting, audience *domain.Audience) {
	audience.Interests = appendNames(audience.Interests, targeting.Interests)
	audience.Behaviors = appendNames(audience.Behaviors, targeting.Behaviors)
	audience.CustomAudiences = appendNames(audience.CustomAudiences, targeting.CustomAudiences)

	for i := range targeting.FlexibleSpec {
		group := &targeting.FlexibleSpec[i]
		audience.Interests = appendNames(audience.Interests, group.Interests)
		audience.Behaviors = appendNames(audience.Behaviors, group.Behaviors)
		audience.CustomAudiences = appendNames(audience.CustomAudiences, group.CustomAudiences)
		audience.Demographics = appendNames(audience.Demographics, group.Demographics)
		audience.Demographics = appendNames(audience.Demographics, group.LifeEvents)
		audience.Demographics = appendNames(audience.Demographics, group.EducationSchools)
		audience.Demographics = appendNames(audience.Demographics, group.WorkEmployers)
	}

	if exclusions := targeting.Exclusions; exclusions != nil {
		audience.ExcludedInterests = appendNames(audience.ExcludedInterests, exclusions.Interests)
		audience.ExcludedInterests = appendNames(audience.ExcludedInterests, exclusions.Behaviors)
		audience.ExcludedInterests = appendNames(audience.ExcludedInterests, exclusions.Demographics)
		audience.ExcludedCustomAudiences = appendNames(audience.ExcludedCustomAudiences, exclusions.CustomAudiences)
	}
}

func appendNames(dst []string, items []metadomain.IDName) []string {
	for _, item := range items {
		if item.Name != "" {
			dst = append(dst, item.Name)
		}
	}

	return dst
}

// resolveZipCodes monta a lista de códigos postais do targeting, resolvendo
// cidade/estado via lookup em lote quando o spec veio sem os nomes. Os lotes
// (máximo de 50 códigos) são emitidos em paralelo; falha em um lote deixa os
// códigos daquele lote sem nome.
func (s *MetaIntegrator) resolveZipCodes(token string, zips []metadomain.RawZip) []*domain.ZipCode {
	if len(zips) == 0 {
		return nil
	}

	codes := make([]*domain.ZipCode, 0, len(zips))
	unresolved := make([]string, 0)

	for _, zip := range zips {
		code := &domain.ZipCode{
			Key:         zip.Key,
			Code:        zipDigits(zip),
			City:        zip.PrimaryCity,
			Region:      zip.Region,
			CountryCode: zip.Country,
		}

		if code.City == "" {
			unresolved = append(unresolved, zip.Key)
		}

		codes = append(codes, code)
	}

	if len(unresolved) == 0 {
		return codes
	}

	resolved := s.lookupZipBatches(token, unresolved)

	for _, code := range codes {
		location, ok := resolved[code.Key]
		if !ok {
			continue
		}

		code.City = location.PrimaryCity
		if code.Region == "" {
			code.Region = location.Region
		}
		if code.CountryCode == "" {
			code.CountryCode = location.CountryCode
		}
	}

	return codes
}

// lookupZipBatches divide as chaves em lotes e consulta todos em paralelo,
// agregando os resultados em um único mapa
func (s *MetaIntegrator) lookupZipBatches(token string, keys []string) map[string]metadomain.RawZipLocation {
	resolved := make(map[string]metadomain.RawZipLocation, len(keys))

	var wg sync.WaitGroup
	var mu sync.Mutex

	for start := 0; start < len(keys); start += metaclient.MaxZipBatchSize {
		end := start + metaclient.MaxZipBatchSize
		if end > len(keys) {
			end = len(keys)
		}

		batch := keys[start:end]
		wg.Add(1)

		go func() {
			defer wg.Done()

			locations, err := s.Client.GetZipLocations(token, batch)
			if err != nil {
				logrus.WithError(err).WithField("batch_size", len(batch)).
					Warn("targeting: falha no lookup de códigos postais")
				return
			}

			mu.Lock()
			for key, location := range locations {
				resolved[key] = location
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	return resolved
}

// zipDigits extrai o código postal da chave do targeting, que vem no formato
// "PAÍS:código"
func zipDigits(zip metadomain.RawZip) string {
	if idx := strings.LastIndex(zip.Key, ":"); idx >= 0 {
		return zip.Key[idx+1:]
	}

	if zip.Name != "" {
		return zip.Name
	}

	return zip.Key
}

// buildLocationEntries mapeia cada sub-coleção do geo_locations em entradas
// estruturadas com a string de exibição pronta
func buildLocationEntries(geo *metadomain.RawGeoLocations, zipCodes []*domain.ZipCode) []*domain.LocationEntry {
	entries := make([]*domain.LocationEntry, 0)

	for _, country := range geo.Countries {
		entries = append(entries, &domain.LocationEntry{
			Type:    domain.LocationTypeCountry,
			Key:     country,
			Country: country,
			Display: country,
		})
	}

	for _, region := range geo.Regions {
		display := region.Name
		if region.Country != "" {
			display = fmt.Sprintf("%s, %s", region.Name, region.Country)
		}
		entries = append(entries, &domain.LocationEntry{
			Type:    domain.LocationTypeRegion,
			Key:     region.Key,
			Name:    region.Name,
			Country: region.Country,
			Display: display,
		})
	}

	for _, city := range geo.Cities {
		entries = append(entries, buildCityEntry(city))
	}

	for _, custom := range geo.CustomLocations {
		entries = append(entries, buildCustomLocationEntry(custom))
	}

	for _, place := range geo.Places {
		display := place.Name
		if place.Radius > 0 {
			display = fmt.Sprintf("%s (+%s %s)", place.Name, formatRadius(place.Radius), radiusUnit(place.DistanceUnit))
		}
		entries = append(entries, &domain.LocationEntry{
			Type:       domain.LocationTypePlace,
			Key:        place.Key,
			Name:       place.Name,
			Radius:     place.Radius,
			RadiusUnit: radiusUnit(place.DistanceUnit),
			Latitude:   place.Latitude,
			Longitude:  place.Longitude,
			Display:    display,
		})
	}

	for _, market := range geo.GeoMarkets {
		display := market.Name
		if display == "" {
			display = market.Key
		}
		entries = append(entries, &domain.LocationEntry{
			Type:    domain.LocationTypeGeoMarket,
			Key:     market.Key,
			Name:    market.Name,
			Display: display,
		})
	}

	for _, district := range geo.ElectoralDistrict {
		display := district.Name
		if display == "" {
			display = district.Key
		}
		entries = append(entries, &domain.LocationEntry{
			Type:    domain.LocationTypeElectoralDistrict,
			Key:     district.Key,
			Name:    district.Name,
			Display: display,
		})
	}

	byKey := make(map[string]*domain.ZipCode, len(zipCodes))
	for _, code := range zipCodes {
		byKey[code.Key] = code
	}

	for _, zip := range geo.Zips {
		entry := &domain.LocationEntry{
			Type: domain.LocationTypeZip,
			Key:  zip.Key,
		}

		if code, ok := byKey[zip.Key]; ok {
			entry.Name = code.Code
			entry.Region = code.Region
			entry.Country = code.CountryCode
			entry.Display = zipDisplay(code)
		} else {
			entry.Name = zipDigits(zip)
			entry.Display = fmt.Sprintf("(%s)", entry.Name)
		}

		entries = append(entries, entry)
	}

	return entries
}

func buildCityEntry(city metadomain.RawCity) *domain.LocationEntry {
	display := city.Name
	if city.Region != "" {
		display = fmt.Sprintf("%s, %s", city.Name, city.Region)
	}
	if city.Radius > 0 {
		display = fmt.Sprintf("%s (+%s %s)", display, formatRadius(city.Radius), radiusUnit(city.DistanceUnit))
	}

	return &domain.LocationEntry{
		Type:       domain.LocationTypeCity,
		Key:        city.Key,
		Name:       city.Name,
		Region:     city.Region,
		Country:    city.Country,
		Radius:     city.Radius,
		RadiusUnit: radiusUnit(city.DistanceUnit),
		Display:    display,
	}
}

func buildCustomLocationEntry(custom metadomain.RawCustomLocation) *domain.LocationEntry {
	label := custom.Address
	if label == "" {
		label = fmt.Sprintf("%.4f, %.4f", custom.Latitude, custom.Longitude)
	}

	display := label
	if custom.Radius > 0 {
		display = fmt.Sprintf("%s (+%s %s)", label, formatRadius(custom.Radius), radiusUnit(custom.DistanceUnit))
	}

	return &domain.LocationEntry{
		Type:       domain.LocationTypeCustomLocation,
		Address:    custom.Address,
		Radius:     custom.Radius,
		RadiusUnit: radiusUnit(custom.DistanceUnit),
		Latitude:   custom.Latitude,
		Longitude:  custom.Longitude,
		Display:    display,
	}
}

// zipDisplay formata um código postal isolado: "City (code)" quando a cidade
// foi resolvida, "(code)" caso contrário
func zipDisplay(code *domain.ZipCode) string {
	if code.City == "" {
		return fmt.Sprintf("(%s)", code.Code)
	}

	return fmt.Sprintf("%s (%s)", code.City, code.Code)
}

// formatLocations produz a string de exibição do público no estilo do
// gerenciador de anúncios: localizações não-postais em ordem de declaração e
// os códigos postais agrupados por estado, com as cidades de cada estado
// listadas antes do nome do estado
func formatLocations(entries []*domain.LocationEntry, zipCodes []*domain.ZipCode) string {
	parts := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.Type == domain.LocationTypeZip {
			continue
		}
		if entry.Display != "" {
			parts = append(parts, entry.Display)
		}
	}

	parts = append(parts, formatZipGroups(zipCodes)...)

	if len(parts) == 0 {
		return "worldwide"
	}

	return strings.Join(parts, ", ")
}

// formatZipGroups agrupa os códigos postais por estado, produzindo strings
// como "City1 (zip1), City2 (zip2) StateName". Códigos sem estado resolvido
// viram "(code)" isolados.
func formatZipGroups(zipCodes []*domain.ZipCode) []string {
	if len(zipCodes) == 0 {
		return nil
	}

	byRegion := make(map[string][]*domain.ZipCode)
	regions := make([]string, 0)
	loose := make([]string, 0)

	for _, code := range zipCodes {
		if code.Region == "" {
			loose = append(loose, zipDisplay(code))
			continue
		}

		if _, ok := byRegion[code.Region]; !ok {
			regions = append(regions, code.Region)
		}
		byRegion[code.Region] = append(byRegion[code.Region], code)
	}

	groups := make([]string, 0, len(regions)+len(loose))

	for _, region := range regions {
		codes := byRegion[region]
		sort.SliceStable(codes, func(a, b int) bool {
			return codes[a].City < codes[b].City
		})

		cities := make([]string, 0, len(codes))
		for _, code := range codes {
			cities = append(cities, zipDisplay(code))
		}

		groups = append(groups, fmt.Sprintf("%s %s", strings.Join(cities, ", "), region))
	}

	return append(groups, loose...)
}

func radiusUnit(distanceUnit string) string {
	if distanceUnit == "mile" {
		return "mi"
	}

	return "km"
}

func formatRadius(radius float64) string {
	return strconv.FormatFloat(radius, 'f', -1, 64)
}
