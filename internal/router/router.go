package router

import (
	"context"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/config"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/handler"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/middleware"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/pending"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are built by the composition root and shared with the worker pool.
type Deps struct {
	DB *gorm.DB
	// Redis is nil when the server runs without it.
	Redis     *redis.Client
	Pendentes pending.Registry
	// Dispatcher is nil when receipts are disabled.
	Dispatcher service.ReciboDispatcher
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// ctx bounds the background purge of the rate limiter tables.
func New(ctx context.Context, cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	loc := cfg.Location()
	db := deps.DB

	apiLimiter := middleware.NewRateLimiter(1000, time.Minute, "Muitas requisições. Tente novamente em instantes.")
	loginLimiter := middleware.NewLoginRateLimiter()
	apiLimiter.StartPurge(ctx)
	loginLimiter.StartPurge(ctx)

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Env, cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(apiLimiter.Middleware())

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	movimentoRepo := repository.NewMovimentoEstoqueRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	funcionarioRepo := repository.NewFuncionarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(funcionarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, fornecedorRepo, movimentoRepo)
	compraSvc := service.NewCompraService(compraRepo, fornecedorRepo, produtoRepo, cfg.OrderPrefix, loc)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, clienteRepo, movimentoRepo, deps.Pendentes, deps.Dispatcher)
	relatorioSvc := service.NewRelatorioService(vendaRepo, loc)
	funcionarioSvc := service.NewFuncionarioService(funcionarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	vendasH := handler.NewVendasHandler(vendaSvc, relatorioSvc)
	funcionariosH := handler.NewFuncionariosHandler(funcionarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, deps.Redis))
	r.POST("/v1/auth/login", loginLimiter.Middleware(), authH.Login)

	// Protected routes. Every authenticated employee can read and sell;
	// catalog and purchasing writes need a gerente, staff management an
	// administrador.
	gerente := middleware.RequireNivel(model.NivelGerente)
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		clientes := v1.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.POST("", clientesH.Criar)
			clientes.GET("/cpf/:cpf", clientesH.ObterPorCPF)
			clientes.GET("/:id", clientesH.Obter)
			clientes.PUT("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", gerente, clientesH.Excluir)
		}

		fornecedores := v1.Group("/fornecedores")
		{
			fornecedores.GET("", fornecedoresH.Listar)
			fornecedores.GET("/:id", fornecedoresH.Obter)
			fornecedores.POST("", gerente, fornecedoresH.Criar)
			fornecedores.PUT("/:id", gerente, fornecedoresH.Atualizar)
			fornecedores.DELETE("/:id", gerente, fornecedoresH.Excluir)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.Obter)
			produtos.GET("/:id/movimentos", produtosH.Movimentos)
			produtos.POST("", gerente, produtosH.Criar)
			produtos.PUT("/:id", gerente, produtosH.Atualizar)
			produtos.DELETE("/:id", gerente, produtosH.Excluir)
		}

		compras := v1.Group("/compras")
		{
			compras.GET("", comprasH.Listar)
			compras.GET("/:id", comprasH.Obter)
			compras.POST("", gerente, comprasH.Registrar)
			compras.PUT("/:id/status", gerente, comprasH.AtualizarStatus)
		}

		vendas := v1.Group("/vendas")
		{
			vendas.POST("/finalizar", vendasH.Finalizar)
			vendas.POST("/pagar", vendasH.Pagar)
			vendas.GET("", vendasH.Listar)
			vendas.GET("/total", vendasH.TotalDoDia)
		}

		funcionarios := v1.Group("/funcionarios", middleware.RequireNivel(model.NivelAdministrador))
		{
			funcionarios.GET("", funcionariosH.Listar)
			funcionarios.POST("", funcionariosH.Criar)
			funcionarios.GET("/:id", funcionariosH.Obter)
			funcionarios.PUT("/:id", funcionariosH.Atualizar)
			funcionarios.DELETE("/:id", funcionariosH.Excluir)
		}
	}

	// Swagger UI, only outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
