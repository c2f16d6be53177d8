package model

// Sheet header names. Rows are appended in exactly these orders.
const (
	ColID     = "ID"
	ColNumber = "Numero_Meio"

	ColCategory       = "Categoria"
	ColBrand          = "Marca"
	ColModel          = "Modelo"
	ColYear           = "Ano"
	ColClassification = "Classificacao"
	ColPartNumber     = "NumPart"
	ColHourMeter      = "Horimetro"
	ColChassis        = "Chassi"
	ColStatus         = "Status"
	ColRegisteredOn   = "DataCadastro"
	ColNotes          = "Observacoes"
	ColActive         = "Ativo"

	ColKind            = "Tipo"
	ColMaintenanceDate = "DataManutencao"
	ColProcess         = "Processo"
	ColProcessNumber   = "NumeroProcesso"
	ColScope           = "TipoManutencao"
	ColCompany         = "Empresa"
	ColContact         = "Contato"
	ColNewStatus       = "NovoStatus"

	ColIdentifiedOn = "DataIdentificacao"
	ColIncidentOn   = "DataIncidente"
	ColSeverity     = "Gravidade"
	ColDescription  = "Descricao"
	ColResolved     = "Resolvido"
)

// Fixed values written by the application.
const (
	CategoryForklift = "EMPILHADEIRA"
	KindMaintenance  = "MANUTENÇÃO"
	KindDamage       = "AVARIA"
	Yes              = "Sim"
	No               = "Não"
)

var (
	EquipmentHeader = []string{
		ColID, ColNumber, ColCategory, ColBrand, ColModel, ColYear, ColClassification,
		ColPartNumber, ColHourMeter, ColChassis, ColStatus, ColRegisteredOn, ColNotes, ColActive,
	}
	MaintenanceHeader = []string{
		ColID, ColNumber, ColKind, ColMaintenanceDate, ColProcess, ColProcessNumber,
		ColScope, ColCompany, ColContact, ColNewStatus, ColNotes,
	}
	DamageHeader = []string{
		ColID, ColNumber, ColIdentifiedOn, ColIncidentOn, ColKind, ColSeverity,
		ColNewStatus, ColDescription, ColResolved,
	}
)
