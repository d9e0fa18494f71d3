package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/realty"
	"github.com/etnz/realty/docs"
	"github.com/etnz/realty/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Loader loads the portfolio the tools report on.
type Loader interface {
	Load(ctx context.Context) (*realty.Portfolio, error)
}

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user owns a portfolio of real-estate properties, mostly in the Philippines, and wants
			to know how it is doing: value, income, tenants, documents to provide.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			The user assumes you know the names of their properties: ask the Analyst first.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketResearcher returns an expert grounded on Google Search.
func NewMarketResearcher() *Expert {
	return &Expert{
		Name: "MarketResearcher",
		Description: `This is a real-estate market researcher, aware of property prices, rental yields
		and developers news in the Philippines. Ask whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert of the real-estate market. You search for prices per square meter,
			rental yields, zonal values and news about developers and locations, and relate
			them to the question. Leverage Google Search to ground your assertions.
			`}}},
		},
	}
}

// NewAnalyst returns the expert reading the user's portfolio.
func NewAnalyst(l Loader, source realty.IncomeSource) *Expert {
	lib := PortfolioTools(l, source)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst, in charge of the user's property portfolio.
		It knows every property, appraisal, lease, payment and document, and computes the portfolio figures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the analyst of the user's property portfolio.
				Use the Tools to read the properties, the financial summary, the market value trend,
				the leases and the documents. Pardon the approximative language of your team mates
				and figure out what they meant. Amounts are in the portfolio currency.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return failure(id, f.Decl.Name, err)
	}
	return success(id, f.Decl.Name, out)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var (
	filterSchema = map[string]*genai.Schema{
		"search":   {Type: genai.TypeString, Description: "Text to find in the property name, address or location."},
		"category": {Type: genai.TypeString, Description: "Exact property type, e.g. Condominium."},
		"location": {Type: genai.TypeString, Enum: []string{"Luzon", "Visayas", "Mindanao"}},
		"payment":  {Type: genai.TypeString, Enum: []string{"Cash", "Amortized", "Fully Paid"}},
		"lease":    {Type: genai.TypeString, Enum: []string{"leased", "vacant"}},
	}
	markdownResponse = &genai.Schema{Type: genai.TypeString, Description: "A markdown report."}
)

// PortfolioTools returns the functions reading the portfolio loaded by l.
func PortfolioTools(l Loader, source realty.IncomeSource) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Summary",
				Description: "Financial summary of the properties matching the filters: cost, market value, income, expenses, NOI and ROI.\n\n" + must(docs.GetTopic("finance")),
				Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: filterSchema},
				Response:    markdownResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				pf, err := l.Load(ctx)
				if err != nil {
					return "", err
				}
				c := criteria(args)
				return renderer.SummaryMarkdown(pf.Summary(c, source), pf.Aggregate(c), realty.Today()), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Properties",
				Description: "List of the properties matching the filters, with identifier, type, location, cost, current value and change.",
				Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: filterSchema},
				Response:    markdownResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				pf, err := l.Load(ctx)
				if err != nil {
					return "", err
				}
				return renderer.PropertiesMarkdown(pf.Filter(criteria(args))), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Property",
				Description: "Detail of one property: acquisition, appraisal history, lease, insurance, running costs and pending documents.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{"id": {Type: genai.TypeString, Description: "Property identifier, as listed by Properties."}},
					Required:   []string{"id"},
				},
				Response: markdownResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				pf, err := l.Load(ctx)
				if err != nil {
					return "", err
				}
				id, _ := args["id"].(string)
				p, ok := pf.Property(id)
				if !ok {
					return "", fmt.Errorf("no property with id %q", id)
				}
				return renderer.PropertyMarkdown(p), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Trend",
				Description: "Market value of the whole portfolio over the last periods.\n\n" + must(docs.GetTopic("trend")),
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"count":  {Type: genai.TypeInteger, Description: "Number of points, 6 by default."},
						"period": {Type: genai.TypeString, Enum: []string{"month", "quarter", "year"}},
						"date": {Type: genai.TypeString, Description: `Date of the last point. Today is the default.
						` + must(docs.GetTopic("dates"))},
					},
				},
				Response: markdownResponse,
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				on, err := parseDate(args)
				if err != nil {
					return "", err
				}
				period := realty.Monthly
				if s, ok := args["period"].(string); ok {
					if period, err = realty.ParsePeriod(s); err != nil {
						return "", err
					}
				}
				count := 6
				if n, ok := args["count"].(float64); ok && n > 0 {
					count = int(n)
				}
				pf, err := l.Load(ctx)
				if err != nil {
					return "", err
				}
				return renderer.TrendMarkdown(realty.MarketValueTrend(pf.Properties, on, count, period)), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Leases",
				Description: "Leases with their property, tenant, term, monthly rent and collected and pending payments.",
				Response:    markdownResponse,
			},
			Func: func(ctx context.Context, _ map[string]any) (string, error) {
				pf, err := l.Load(ctx)
				if err != nil {
					return "", err
				}
				return renderer.LeasesMarkdown(pf.LeaseViews()), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "PendingDocuments",
				Description: "Documents still to be provided, high priority first.\n\n" + must(docs.GetTopic("documents")),
				Response:    markdownResponse,
			},
			Func: func(ctx context.Context, _ map[string]any) (string, error) {
				pf, err := l.Load(ctx)
				if err != nil {
					return "", err
				}
				return renderer.DocumentsMarkdown("Pending Documents", pf.PendingDocuments()), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "RecentActivity",
				Description: "The ten most recent events of the portfolio: new properties, uploads, payments, administrative operations.",
				Response:    markdownResponse,
			},
			Func: func(ctx context.Context, _ map[string]any) (string, error) {
				pf, err := l.Load(ctx)
				if err != nil {
					return "", err
				}
				return renderer.ActivityMarkdown(pf.RecentActivity(10), time.Now()), nil
			},
		},
	}
}

func criteria(args map[string]any) realty.Criteria {
	get := func(k string) string {
		s, _ := args[k].(string)
		return s
	}
	return realty.Criteria{
		Search:        get("search"),
		Category:      get("category"),
		Region:        get("location"),
		PaymentStatus: get("payment"),
		LeaseStatus:   get("lease"),
	}
}

func parseDate(args map[string]any) (realty.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return realty.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return realty.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := realty.ParseDate(sdate)
	if err != nil {
		return realty.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the format date\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}
	return date, nil
}
