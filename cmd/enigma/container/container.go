package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/enigma/internal/core/usecases/cleansessions"
	"github.com/sergeii/enigma/internal/core/usecases/configuresession"
	"github.com/sergeii/enigma/internal/core/usecases/createsession"
	"github.com/sergeii/enigma/internal/core/usecases/encodetext"
	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/core/usecases/gettable"
	"github.com/sergeii/enigma/internal/core/usecases/listsessions"
	"github.com/sergeii/enigma/internal/core/usecases/removesession"
	"github.com/sergeii/enigma/internal/core/usecases/watchsession"
)

type Container struct {
	CreateSession    createsession.UseCase
	GetSession       getsession.UseCase
	ListSessions     listsessions.UseCase
	ConfigureSession configuresession.UseCase
	RemoveSession    removesession.UseCase
	CleanSessions    cleansessions.UseCase
	EncodeText       encodetext.UseCase
	GetTable         gettable.UseCase
	WatchSession     watchsession.UseCase
}

func New(
	createSessionUseCase createsession.UseCase,
	getSessionUseCase getsession.UseCase,
	listSessionsUseCase listsessions.UseCase,
	configureSessionUseCase configuresession.UseCase,
	removeSessionUseCase removesession.UseCase,
	cleanSessionsUseCase cleansessions.UseCase,
	encodeTextUseCase encodetext.UseCase,
	getTableUseCase gettable.UseCase,
	watchSessionUseCase watchsession.UseCase,
) Container {
	return Container{
		CreateSession:    createSessionUseCase,
		GetSession:       getSessionUseCase,
		ListSessions:     listSessionsUseCase,
		ConfigureSession: configureSessionUseCase,
		RemoveSession:    removeSessionUseCase,
		CleanSessions:    cleanSessionsUseCase,
		EncodeText:       encodeTextUseCase,
		GetTable:         getTableUseCase,
		WatchSession:     watchSessionUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(createsession.New),
	fx.Provide(getsession.New),
	fx.Provide(listsessions.New),
	fx.Provide(configuresession.New),
	fx.Provide(removesession.New),
	fx.Provide(cleansessions.New),
	fx.Provide(encodetext.New),
	fx.Provide(gettable.New),
	fx.Provide(watchsession.New),
	fx.Provide(New),
)
