package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/s2"
	"github.com/lestrrat-go/strftime"
	"github.com/tzneal/coordconv"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
)

const (
	labelWidth = 30

	// EarthRadius is the mean Earth radius in metres used for distances
	EarthRadius = 6371008.8

	systemTimeFormat = "%Y-%m-%d %H:%M:%S UTC"
)

// Describer renders decoded records as labelled text, one section per
// message subtype
type Describer struct {
	heading lipgloss.Style
	label   lipgloss.Style
}

// NewDescriber creates a describer. With color off only alignment is applied.
func NewDescriber(color bool) *Describer {
	d := &Describer{
		heading: lipgloss.NewStyle(),
		label:   lipgloss.NewStyle().Width(labelWidth),
	}
	if color {
		d.heading = d.heading.Bold(true).Foreground(lipgloss.Color("12"))
		d.label = d.label.Foreground(lipgloss.Color("8"))
	}
	return d
}

// Describe renders the fields of each listed subtype. Pack is expanded by
// the caller into its contained types.
func (d *Describer) Describe(a *remoteid.Aircraft, types ...remoteid.MessageType) string {
	var sections []string
	for _, t := range types {
		sections = append(sections, d.section(a, t, types))
	}
	return strings.Join(sections, "\n")
}

func (d *Describer) section(a *remoteid.Aircraft, t remoteid.MessageType, all []remoteid.MessageType) string {
	var rows [][2]string

	switch t {
	case remoteid.MessageTypeBasicID:
		rows = [][2]string{
			{"ID type", a.IDType.String()},
			{"UA type", a.UAType.String()},
			{"UAS ID", a.ID},
		}
	case remoteid.MessageTypeLocation:
		rows = [][2]string{
			{"Operational status", a.OperationalStatus.String()},
			{"Height type", a.HeightType.String()},
			{"Direction", fmt.Sprintf("%d deg", a.Direction)},
			{"Horizontal speed", formatFloat(a.HorizontalSpeed) + " m/s"},
			{"Vertical speed", formatFloat(a.VerticalSpeed) + " m/s"},
			{"Latitude", formatFloat(a.Latitude) + " deg"},
			{"Longitude", formatFloat(a.Longitude) + " deg"},
			{"UTM", UTM(a.Latitude, a.Longitude)},
			{"Pressure altitude", formatFloat(a.PressureAltitude) + " m"},
			{"Geodetic altitude", formatFloat(a.GeodeticAltitude) + " m"},
			{"Height", formatFloat(a.Height) + " m"},
			{"Geodetic accuracy", a.GeodeticAccuracy.String()},
			{"Horizontal accuracy", a.HorizontalAccuracy.String()},
			{"Pressure accuracy", a.PressureAccuracy.String()},
			{"Speed accuracy", a.SpeedAccuracy.String()},
			{"Timestamp", formatHourOffset(a.Timestamp)},
			{"Timestamp accuracy", formatFloat(a.TimestampAccuracy.Seconds()) + " s"},
		}
	case remoteid.MessageTypeSelfID:
		rows = [][2]string{
			{"Description type", a.DescriptionType.String()},
			{"Description", a.Description},
		}
	case remoteid.MessageTypeSystem:
		rows = [][2]string{
			{"Classification type", a.Classification.Type().String()},
			{"Operator location source", a.OperatorLocationSourceType.String()},
			{"Operator latitude", formatFloat(a.OperatorLatitude) + " deg"},
			{"Operator longitude", formatFloat(a.OperatorLongitude) + " deg"},
			{"Operator UTM", UTM(a.OperatorLatitude, a.OperatorLongitude)},
			{"Area count", strconv.Itoa(a.AreaCount)},
			{"Area radius", formatFloat(a.AreaRadius) + " m"},
			{"Area ceiling", formatFloat(a.AreaCeiling) + " m"},
			{"Area floor", formatFloat(a.AreaFloor) + " m"},
			{"Operator altitude", formatFloat(a.OperatorAltitude) + " m"},
			{"Timestamp", FormatSystemTime(a.SystemTimestamp)},
		}
		if eu, ok := a.Classification.EU(); ok {
			rows = append(rows,
				[2]string{"EU UA category", eu.Category.String()},
				[2]string{"EU UA class", eu.Class.String()})
		}
		if cn, ok := a.Classification.China(); ok {
			rows = append(rows,
				[2]string{"China UA category", cn.Category.String()},
				[2]string{"China UA class", cn.Class.String()})
		}
		if contains(all, remoteid.MessageTypeLocation) {
			rows = append(rows, [2]string{"Operator distance", formatFloat(OperatorDistance(a)) + " m"})
		}
	case remoteid.MessageTypeOperatorID:
		rows = [][2]string{
			{"Operator ID type", a.OperatorIDType.String()},
			{"Operator ID", a.OperatorID},
		}
	default:
		rows = [][2]string{{"Fields", "not decoded"}}
	}

	var sb strings.Builder
	sb.WriteString(d.heading.Render(sectionTitle(t)))
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(d.label.Render(row[0] + ":"))
		sb.WriteString(row[1])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sectionTitle(t remoteid.MessageType) string {
	switch t {
	case remoteid.MessageTypeBasicID:
		return "Basic ID"
	case remoteid.MessageTypeLocation:
		return "Location/Vector"
	case remoteid.MessageTypeSelfID:
		return "Self-ID"
	case remoteid.MessageTypeSystem:
		return "System"
	case remoteid.MessageTypeOperatorID:
		return "Operator ID"
	default:
		return t.String()
	}
}

// UTM formats a position as "zone 50N 448251E 4417231N", or "n/a" outside
// the UTM latitude band
func UTM(lat, lon float64) string {
	coord, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lon), 0)
	if err != nil {
		return "n/a"
	}

	hemisphere := 'N'
	if coord.Hemisphere == coordconv.HemisphereSouth {
		hemisphere = 'S'
	}
	return fmt.Sprintf("zone %d%c %.0fE %.0fN", coord.Zone, hemisphere, coord.Easting, coord.Northing)
}

// OperatorDistance is the great-circle distance in metres between the
// aircraft and its operator
func OperatorDistance(a *remoteid.Aircraft) float64 {
	aircraft := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	operator := s2.LatLngFromDegrees(a.OperatorLatitude, a.OperatorLongitude)
	return aircraft.Distance(operator).Radians() * EarthRadius
}

// FormatSystemTime formats a System message timestamp in UTC
func FormatSystemTime(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	s, err := strftime.Format(systemTimeFormat, t.UTC())
	if err != nil {
		return t.UTC().String()
	}
	return s
}

// formatHourOffset renders a Location timestamp as minutes and seconds past the hour
func formatHourOffset(d time.Duration) string {
	minutes := int(d / time.Minute)
	tenths := int((d % time.Minute) / (100 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d.%d past the hour", minutes, tenths/10, tenths%10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func contains(types []remoteid.MessageType, t remoteid.MessageType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
