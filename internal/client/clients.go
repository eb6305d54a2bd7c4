package client

import "github.com/ekovalev/drillbot.git/internal/config"

type Clients struct {
	*YandexDictAPI
}

func InitClients(cfg config.YandexConfig) Clients {
	return Clients{
		YandexDictAPI: NewYandexDictAPI(cfg.URL, cfg.Token),
	}
}
