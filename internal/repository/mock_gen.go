// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
//go:generate mockgen -source=./profile.go -destination=../mocks/mock_profile_repository.go -package=mocks ProfileRepositoryIface
//go:generate mockgen -source=./property.go -destination=../mocks/mock_property_repository.go -package=mocks PropertyRepositoryIface
//go:generate mockgen -source=./workorder.go -destination=../mocks/mock_workorder_repository.go -package=mocks WorkOrderRepositoryIface
