package finance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/courierops/backend/internal/domain/shared"
	"github.com/courierops/backend/internal/domain/shared/valueobject"
)

// ReconciliationInput carries everything one report computation needs. The
// caller materializes all record sets up front; the engine never re-queries
// storage. Previous is nil when the preceding window would fall before the
// epoch, in which case the comparison block is omitted from the report.
type ReconciliationInput struct {
	SubOrgID    uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	Collections []CollectionEvent
	Deliveries  []DeliveryEvent
	Settlements []SettlementRecord
	Couriers    []Courier
	Previous    *PreviousWindow
}

// PreviousWindow holds the record sets for the comparison period. Only
// revenue and confirmed expense are recomputed there, so deliveries are not
// needed.
type PreviousWindow struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Collections []CollectionEvent
	Settlements []SettlementRecord
}

// PreviousWindowRange returns the immediately preceding window of identical
// day count, or ok=false when it would start before the epoch.
func PreviousWindowRange(start, end time.Time) (time.Time, time.Time, bool) {
	days := DaysBetween(start, end)
	prevEnd := DateOf(start).AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))
	if prevStart.Before(Epoch) {
		return time.Time{}, time.Time{}, false
	}
	return prevStart, prevEnd, true
}

// ReconciliationService is the domain service that computes the full
// revenue/expense/profit breakdown for a date window. It is stateless; all
// per-computation state (coverage map, price cache) lives inside one
// BuildReport call.
type ReconciliationService struct {
	resolver PriceResolver
	logger   *zap.Logger
}

// NewReconciliationService creates the engine with its price resolution
// collaborator.
func NewReconciliationService(resolver PriceResolver, logger *zap.Logger) *ReconciliationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconciliationService{resolver: resolver, logger: logger}
}

// BuildReport runs the aggregation pipeline: coverage, revenue, expense,
// indicators, breakdowns, comparison, daily evolution. Monetary figures are
// quantized exactly once, at the point they become final.
func (s *ReconciliationService) BuildReport(ctx context.Context, input ReconciliationInput) (*ReconciliationReport, error) {
	if input.SubOrgID == uuid.Nil {
		return nil, shared.ErrMissingSubOrg
	}
	if DateOf(input.PeriodStart).After(DateOf(input.PeriodEnd)) {
		return nil, shared.ErrInvalidDateRange
	}

	coverage := NewCoverageTracker(input.Settlements)
	revenue := AggregateRevenue(input.Collections)
	aggregator := NewExpenseAggregator(
		coverage, s.resolver, input.SubOrgID, input.Couriers,
		input.PeriodStart, input.PeriodEnd, s.logger,
	)
	expense := aggregator.Aggregate(ctx, input.Settlements, input.Deliveries)

	receita := valueobject.Cents(revenue.Total)
	confirmadas := valueobject.Cents(expense.Confirmed)
	pendentes := valueobject.Cents(expense.Pending)
	totais := confirmadas.Add(pendentes)
	lucro := receita.Sub(totais)

	report := &ReconciliationReport{
		DataInicio:          DateOf(input.PeriodStart),
		DataFim:             DateOf(input.PeriodEnd),
		ReceitaBruta:        receita,
		DespesasConfirmadas: confirmadas,
		DespesasPendentes:   pendentes,
		DespesasTotais:      totais,
		LucroLiquido:        lucro,
		MargemLiquida:       valueobject.RatioPercent(lucro, receita),

		Indicadores:            s.buildIndicators(receita, totais, lucro, revenue, expense),
		PorServico:             s.buildServiceProfits(totais, revenue, expense),
		PorBase:                s.buildBaseProfits(totais, revenue),
		DistribuicaoEntregador: s.buildCourierDistribution(totais, expense, input.Couriers),
		EvolucaoDiaria:         BuildDailyEvolution(input.PeriodStart, input.PeriodEnd, revenue, expense),

		ApenasAcertosConfirmados: true,
		EntregasSemAcerto:        expense.ValidDeliveries > 0 && expense.ConfirmedSettlements == 0,
	}
	report.DRE = s.buildIncomeStatement(report)
	report.Comparativo = s.buildComparison(receita, confirmadas, input.Previous)

	return report, nil
}

func (s *ReconciliationService) buildIndicators(
	receita, totais, lucro decimal.Decimal,
	revenue *RevenueAggregate,
	expense *ExpenseAggregate,
) Indicators {
	pacotes := decimal.NewFromInt(revenue.TotalItems)
	entregas := decimal.NewFromInt(expense.ValidDeliveries)
	return Indicators{
		TicketMedioPorPacote: valueobject.Cents(valueobject.SafeDiv(receita, pacotes)),
		CustoMedioPorEntrega: valueobject.Cents(valueobject.SafeDiv(totais, entregas)),
		LucroPorPacote:       valueobject.Cents(valueobject.SafeDiv(lucro, pacotes)),
		TaxaAceitacao:        valueobject.RatioPercent(entregas, pacotes),
		PacotesColetados:     revenue.TotalItems,
		EntregasValidas:      expense.ValidDeliveries,
	}
}

// buildServiceProfits allocates total expense to service classes by each
// class's share of valid deliveries; settlements carry no per-service split
// of their own.
func (s *ReconciliationService) buildServiceProfits(
	totais decimal.Decimal,
	revenue *RevenueAggregate,
	expense *ExpenseAggregate,
) []ServiceProfit {
	totalDeliveries := decimal.NewFromInt(expense.ValidDeliveries)

	rows := make([]ServiceProfit, 0, len(ServiceClasses))
	for _, class := range ServiceClasses {
		receita := valueobject.Cents(revenue.ByService[class])
		share := decimal.NewFromInt(expense.DeliveriesByService[class])
		despesa := valueobject.Cents(totais.Mul(valueobject.SafeDiv(share, totalDeliveries)))
		lucro := receita.Sub(despesa)
		rows = append(rows, ServiceProfit{
			Servico:  class.DisplayName(),
			Receita:  receita,
			Despesa:  despesa,
			Lucro:    lucro,
			Margem:   valueobject.RatioPercent(lucro, receita),
			Pacotes:  revenue.ItemsByService[class],
			Entregas: expense.DeliveriesByService[class],
		})
	}
	return rows
}

// buildBaseProfits allocates expense to bases by revenue share and sorts by
// profit descending. With zero total revenue there is no share to allocate
// by, so the fallback lists bases alphabetically with zero expense.
func (s *ReconciliationService) buildBaseProfits(
	totais decimal.Decimal,
	revenue *RevenueAggregate,
) []BaseProfit {
	rows := make([]BaseProfit, 0, len(revenue.ByBase))

	if revenue.Total.IsZero() {
		for base, value := range revenue.ByBase {
			receita := valueobject.Cents(value)
			rows = append(rows, BaseProfit{
				Base:    base,
				Receita: receita,
				Despesa: decimal.Zero,
				Lucro:   receita,
			})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Base < rows[j].Base })
		return rows
	}

	for base, value := range revenue.ByBase {
		receita := valueobject.Cents(value)
		despesa := valueobject.Cents(totais.Mul(value.Div(revenue.Total)))
		rows = append(rows, BaseProfit{
			Base:    base,
			Receita: receita,
			Despesa: despesa,
			Lucro:   receita.Sub(despesa),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Lucro.Equal(rows[j].Lucro) {
			return rows[i].Lucro.GreaterThan(rows[j].Lucro)
		}
		return rows[i].Base < rows[j].Base
	})
	return rows
}

func (s *ReconciliationService) buildCourierDistribution(
	totais decimal.Decimal,
	expense *ExpenseAggregate,
	couriers []Courier,
) []CourierExpense {
	names := make(map[uuid.UUID]string, len(couriers))
	for _, c := range couriers {
		names[c.ID] = c.Name
	}

	rows := make([]CourierExpense, 0, len(expense.ByCourier))
	for courierID, value := range expense.ByCourier {
		valor := valueobject.Cents(value)
		name := names[courierID]
		if name == "" {
			name = courierID.String()
		}
		rows = append(rows, CourierExpense{
			EntregadorID: courierID.String(),
			Nome:         name,
			Valor:        valor,
			Percentual:   valueobject.RatioPercent(valor, totais),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Valor.Equal(rows[j].Valor) {
			return rows[i].Valor.GreaterThan(rows[j].Valor)
		}
		return rows[i].Nome < rows[j].Nome
	})
	return rows
}

func (s *ReconciliationService) buildIncomeStatement(r *ReconciliationReport) []IncomeLine {
	var serviceNote string
	for i, row := range r.PorServico {
		if i > 0 {
			serviceNote += " | "
		}
		serviceNote += fmt.Sprintf("%s R$ %s", row.Servico, row.Receita.StringFixed(2))
	}

	return []IncomeLine{
		{
			Linha:      "Receita Bruta",
			Valor:      r.ReceitaBruta,
			Observacao: serviceNote,
		},
		{
			Linha: "Despesas Operacionais",
			Valor: r.DespesasTotais,
			Observacao: fmt.Sprintf("Confirmadas R$ %s | Pendentes R$ %s | Custo médio por entrega R$ %s",
				r.DespesasConfirmadas.StringFixed(2),
				r.DespesasPendentes.StringFixed(2),
				r.Indicadores.CustoMedioPorEntrega.StringFixed(2)),
		},
		{
			Linha:      "Lucro Líquido",
			Valor:      r.LucroLiquido,
			Observacao: fmt.Sprintf("Margem líquida de %s%%", r.MargemLiquida.StringFixed(2)),
		},
	}
}

// buildComparison recomputes revenue and confirmed expense for the preceding
// window. Pending expense is excluded on both sides so the bases match.
// Every percentage delta is nil (absent, not zero) when its baseline is zero.
func (s *ReconciliationService) buildComparison(
	receita, confirmadas decimal.Decimal,
	previous *PreviousWindow,
) *PeriodComparison {
	if previous == nil {
		return nil
	}

	prevReceita := valueobject.Cents(AggregateRevenue(previous.Collections).Total)
	prevConfirmadas := decimal.Zero
	for _, settlement := range previous.Settlements {
		if settlement.Status.IsConfirmed() {
			prevConfirmadas = prevConfirmadas.Add(settlement.FinalAmount)
		}
	}
	prevConfirmadas = valueobject.Cents(prevConfirmadas)
	prevLucro := prevReceita.Sub(prevConfirmadas)
	prevMargem := valueobject.RatioPercent(prevLucro, prevReceita)

	lucro := receita.Sub(confirmadas)
	margem := valueobject.RatioPercent(lucro, receita)

	cmp := &PeriodComparison{
		PeriodoInicio:   DateOf(previous.PeriodStart),
		PeriodoFim:      DateOf(previous.PeriodEnd),
		Receita:         prevReceita,
		Despesa:         prevConfirmadas,
		Lucro:           prevLucro,
		Margem:          prevMargem,
		DeltaReceitaPct: percentDelta(receita, prevReceita),
		DeltaDespesaPct: percentDelta(confirmadas, prevConfirmadas),
		DeltaLucroPct:   percentDelta(lucro, prevLucro),
	}
	if !prevReceita.IsZero() {
		points := valueobject.Percent(margem.Sub(prevMargem))
		cmp.DeltaMargemPontos = &points
	}
	return cmp
}

// percentDelta returns (current-baseline)/baseline*100, or nil when the
// baseline is zero.
func percentDelta(current, baseline decimal.Decimal) *decimal.Decimal {
	if baseline.IsZero() {
		return nil
	}
	delta := valueobject.Percent(current.Sub(baseline).Div(baseline).Mul(decimal.NewFromInt(100)))
	return &delta
}
