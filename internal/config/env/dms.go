package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type dmsEnv struct {
	BaseURL   string `env:"DMS_BASE_URL,required"`
	Cookie    string `env:"DMS_COOKIE,required"`
	Location  string `env:"DMS_LOCATION,required"`
	CompanyID string `env:"DMS_COMPANY_ID,required"`

	// DMS_LOCATION_COOKIES="20XX=JSESSIONID=a; dmsLoc=20XX|21YY=JSESSIONID=b"
	LocationCookies map[string]string `env:"DMS_LOCATION_COOKIES" envSeparator:"|" envKeyValSeparator:"="`

	RequestTimeout time.Duration `env:"DMS_REQUEST_TIMEOUT" envDefault:"60s"`
	RequestRPS     float64       `env:"DMS_REQUEST_RPS" envDefault:"2"`

	BrowserFallback bool          `env:"DMS_BROWSER_FALLBACK" envDefault:"false"`
	BrowserTimeout  time.Duration `env:"DMS_BROWSER_TIMEOUT" envDefault:"20s"`

	OrderSearchPath     string `env:"DMS_ORDER_SEARCH_PATH" envDefault:"/dms/orders/search"`
	OrderJSONPath       string `env:"DMS_ORDER_JSON_PATH" envDefault:"/dms/orders/data"`
	InboundPath         string `env:"DMS_INBOUND_PATH" envDefault:"/dms/inbound/history"`
	ReceivingReportPath string `env:"DMS_RECEIVING_REPORT_PATH" envDefault:"/dms/inbound/report"`
	ASISLoadsPath       string `env:"DMS_ASIS_LOADS_PATH" envDefault:"/dms/asis/loads"`
	ASISLoadDetailPath  string `env:"DMS_ASIS_LOAD_DETAIL_PATH" envDefault:"/dms/asis/load"`
	InventoryReportPath string `env:"DMS_INVENTORY_REPORT_PATH" envDefault:"/dms/inventory/report"`
}

type dms struct {
	raw dmsEnv
}

func NewDMSConfig() (*dms, error) {
	var raw dmsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &dms{raw: raw}, nil
}

func (cfg *dms) BaseURL() string               { return cfg.raw.BaseURL }
func (cfg *dms) Cookie() string                { return cfg.raw.Cookie }
func (cfg *dms) Location() string              { return cfg.raw.Location }
func (cfg *dms) LocationCookies() map[string]string {
	return cfg.raw.LocationCookies
}
func (cfg *dms) CompanyID() string             { return cfg.raw.CompanyID }
func (cfg *dms) RequestTimeout() time.Duration { return cfg.raw.RequestTimeout }
func (cfg *dms) RequestRPS() float64           { return cfg.raw.RequestRPS }
func (cfg *dms) BrowserFallback() bool         { return cfg.raw.BrowserFallback }
func (cfg *dms) BrowserTimeout() time.Duration { return cfg.raw.BrowserTimeout }
func (cfg *dms) OrderSearchPath() string       { return cfg.raw.OrderSearchPath }
func (cfg *dms) OrderJSONPath() string         { return cfg.raw.OrderJSONPath }
func (cfg *dms) InboundPath() string           { return cfg.raw.InboundPath }
func (cfg *dms) ReceivingReportPath() string   { return cfg.raw.ReceivingReportPath }
func (cfg *dms) ASISLoadsPath() string         { return cfg.raw.ASISLoadsPath }
func (cfg *dms) ASISLoadDetailPath() string    { return cfg.raw.ASISLoadDetailPath }
func (cfg *dms) InventoryReportPath() string   { return cfg.raw.InventoryReportPath }
