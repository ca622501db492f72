package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationReport is the full computed read model for one report window.
// All monetary and percentage figures are quantized to 2 fraction digits.
// Produced fresh per request; never persisted.
type ReconciliationReport struct {
	DataInicio time.Time `json:"data_inicio"`
	DataFim    time.Time `json:"data_fim"`

	ReceitaBruta        decimal.Decimal `json:"receita_bruta"`
	DespesasConfirmadas decimal.Decimal `json:"despesas_confirmadas"`
	DespesasPendentes   decimal.Decimal `json:"despesas_pendentes"`
	DespesasTotais      decimal.Decimal `json:"despesas_totais"`
	LucroLiquido        decimal.Decimal `json:"lucro_liquido"`
	MargemLiquida       decimal.Decimal `json:"margem_liquida"`

	Indicadores            Indicators          `json:"indicadores"`
	PorServico             []ServiceProfit     `json:"por_servico"`
	PorBase                []BaseProfit        `json:"por_base"`
	DistribuicaoEntregador []CourierExpense    `json:"distribuicao_entregadores"`
	DRE                    []IncomeLine        `json:"dre"`
	Comparativo            *PeriodComparison   `json:"comparativo,omitempty"`
	EvolucaoDiaria         []DailyEvolutionRow `json:"evolucao_diaria"`

	// Advisory flags, not load-bearing for correctness.
	ApenasAcertosConfirmados bool `json:"apenas_acertos_confirmados"`
	EntregasSemAcerto        bool `json:"entregas_sem_acerto"`
}

// Indicators holds the operational ratios, each defined as zero when its
// denominator is zero.
type Indicators struct {
	TicketMedioPorPacote decimal.Decimal `json:"ticket_medio_por_pacote"`
	CustoMedioPorEntrega decimal.Decimal `json:"custo_medio_por_entrega"`
	LucroPorPacote       decimal.Decimal `json:"lucro_por_pacote"`
	TaxaAceitacao        decimal.Decimal `json:"taxa_aceitacao"`
	PacotesColetados     int64           `json:"pacotes_coletados"`
	EntregasValidas      int64           `json:"entregas_validas"`
}

// ServiceProfit is the per-service P&L line. Expense is allocated to classes
// in proportion to each class's share of valid deliveries.
type ServiceProfit struct {
	Servico  string          `json:"servico"`
	Receita  decimal.Decimal `json:"receita"`
	Despesa  decimal.Decimal `json:"despesa"`
	Lucro    decimal.Decimal `json:"lucro"`
	Margem   decimal.Decimal `json:"margem"`
	Pacotes  int64           `json:"pacotes"`
	Entregas int64           `json:"entregas"`
}

// BaseProfit is the per-base profitability line, expense allocated by each
// base's share of total revenue.
type BaseProfit struct {
	Base    string          `json:"base"`
	Receita decimal.Decimal `json:"receita"`
	Despesa decimal.Decimal `json:"despesa"`
	Lucro   decimal.Decimal `json:"lucro"`
}

// CourierExpense is one row of the expense distribution by courier.
type CourierExpense struct {
	EntregadorID string          `json:"entregador_id"`
	Nome         string          `json:"nome"`
	Valor        decimal.Decimal `json:"valor"`
	Percentual   decimal.Decimal `json:"percentual"`
}

// IncomeLine is one display line of the simplified income statement.
type IncomeLine struct {
	Linha      string          `json:"linha"`
	Valor      decimal.Decimal `json:"valor"`
	Observacao string          `json:"observacao"`
}

// PeriodComparison compares the window against the immediately preceding
// window of equal day count, using confirmed expense only. Delta pointers
// are nil when the baseline denominator is zero; the whole block is omitted
// when the preceding window would fall before the epoch.
type PeriodComparison struct {
	PeriodoInicio time.Time       `json:"periodo_inicio"`
	PeriodoFim    time.Time       `json:"periodo_fim"`
	Receita       decimal.Decimal `json:"receita"`
	Despesa       decimal.Decimal `json:"despesa"`
	Lucro         decimal.Decimal `json:"lucro"`
	Margem        decimal.Decimal `json:"margem"`

	DeltaReceitaPct   *decimal.Decimal `json:"delta_receita_pct,omitempty"`
	DeltaDespesaPct   *decimal.Decimal `json:"delta_despesa_pct,omitempty"`
	DeltaLucroPct     *decimal.Decimal `json:"delta_lucro_pct,omitempty"`
	DeltaMargemPontos *decimal.Decimal `json:"delta_margem_pontos,omitempty"`
}

// DailyEvolutionRow is one day of the revenue/expense/profit series.
type DailyEvolutionRow struct {
	Data    time.Time       `json:"data"`
	Receita decimal.Decimal `json:"receita"`
	Despesa decimal.Decimal `json:"despesa"`
	Lucro   decimal.Decimal `json:"lucro"`
}
