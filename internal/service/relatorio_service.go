package service

import (
	"context"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/shopspring/decimal"
)

const obsResumoMax = 50

type RelatorioService interface {
	// VendasNoPeriodo lists sales between two DD/MM/YYYY dates, both inclusive.
	VendasNoPeriodo(ctx context.Context, dataInicio, dataFim string) (*dto.VendasPeriodoResponse, error)
	TotalDoDia(ctx context.Context, data string) (*dto.TotalDoDiaResponse, error)
}

type relatorioService struct {
	vendas repository.VendaRepository
	loc    *time.Location
}

func NewRelatorioService(vendas repository.VendaRepository, loc *time.Location) RelatorioService {
	return &relatorioService{vendas: vendas, loc: loc}
}

func (s *relatorioService) parse(data string) (time.Time, error) {
	t, err := format.ParseData(data, s.loc)
	if err != nil {
		return time.Time{}, invalid("%s", format.ErrDataInvalida.Error())
	}
	return t, nil
}

func (s *relatorioService) VendasNoPeriodo(ctx context.Context, dataInicio, dataFim string) (*dto.VendasPeriodoResponse, error) {
	inicio, err := s.parse(dataInicio)
	if err != nil {
		return nil, err
	}
	fim, err := s.parse(dataFim)
	if err != nil {
		return nil, err
	}
	if fim.Before(inicio) {
		return nil, invalid("A data final não pode ser anterior à data inicial")
	}

	vendas, err := s.vendas.ListPeriodo(ctx, inicio.UTC(), fim.AddDate(0, 0, 1).UTC())
	if err != nil {
		return nil, err
	}

	resp := &dto.VendasPeriodoResponse{Vendas: make([]dto.VendaResumo, 0, len(vendas))}
	total := decimal.Zero
	for _, v := range vendas {
		cliente := "Cliente não identificado"
		if v.Cliente != nil {
			cliente = v.Cliente.Nome
		}
		resp.Vendas = append(resp.Vendas, dto.VendaResumo{
			ID:             v.ID,
			Codigo:         format.CodigoVenda(v.ID),
			Data:           v.DataVenda.In(s.loc).Format("02/01/2006 15:04"),
			Cliente:        cliente,
			Total:          v.TotalVenda,
			TotalFormatado: format.FormatarMoeda(v.TotalVenda),
			Status:         v.Status,
			Observacoes:    format.Truncar(v.Observacoes, obsResumoMax),
		})
		total = total.Add(v.TotalVenda)
	}
	resp.Quantidade = len(resp.Vendas)
	resp.Total = total
	resp.TotalFormatado = format.FormatarMoeda(total)
	return resp, nil
}

func (s *relatorioService) TotalDoDia(ctx context.Context, data string) (*dto.TotalDoDiaResponse, error) {
	dia, err := s.parse(data)
	if err != nil {
		return nil, err
	}
	vendas, err := s.vendas.ListPeriodo(ctx, dia.UTC(), dia.AddDate(0, 0, 1).UTC())
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, v := range vendas {
		total = total.Add(v.TotalVenda)
	}
	return &dto.TotalDoDiaResponse{
		Data:           format.FormatarData(dia, s.loc),
		Total:          total,
		TotalFormatado: format.FormatarMoeda(total),
	}, nil
}
