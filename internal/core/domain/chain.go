package domain

import "github.com/shopspring/decimal"

// Minimum wallet balances, in coins, the chain service needs per operation.
var (
	MinDeployBalance = decimal.RequireFromString("0.5")
	MinMintBalance   = decimal.RequireFromString("0.08")
)

type DeployCollectionRequest struct {
	CollectionName        string `json:"collectionName"`
	CollectionDescription string `json:"collectionDescription"`
	CollectionImage       string `json:"collectionImage"`
}

type DeployCollectionResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	CollectionAddress string `json:"collectionAddress"`
	MetadataURL       string `json:"metadataUrl"`
	Explorer          string `json:"explorer"`
	Instructions      string `json:"instructions,omitempty"`
}

type MintNFTRequest struct {
	Name             string `json:"name"`
	Image            string `json:"image"`
	Description      string `json:"description"`
	RecipientAddress string `json:"recipientAddress,omitempty"`
}

type NFTData struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Image             string `json:"image"`
	MetadataURL       string `json:"metadataUrl"`
	IPFSHash          string `json:"ipfsHash"`
	ItemIndex         string `json:"itemIndex"`
	NFTAddress        string `json:"nftAddress"`
	CollectionAddress string `json:"collectionAddress"`
	Owner             string `json:"owner"`
}

type MintInstructions struct {
	ViewNFT            string `json:"viewNFT,omitempty"`
	NFTExplorer        string `json:"nftExplorer,omitempty"`
	CollectionExplorer string `json:"collectionExplorer,omitempty"`
	Note               string `json:"note,omitempty"`
}

type MintNFTResponse struct {
	Status       string           `json:"status"`
	Message      string           `json:"message"`
	NFTData      NFTData          `json:"nftData"`
	Instructions MintInstructions `json:"instructions"`
}

// WalletInfo describes the chain service's operating wallet.
type WalletInfo struct {
	Address      string `json:"address"`
	Balance      string `json:"balance"`      // base units
	BalanceInTON string `json:"balanceInTON"` // coins, 4 decimals
	Funded       bool   `json:"funded"`
	Instructions string `json:"instructions,omitempty"`
}

// Coins returns the balance in coins, preferring the exact base-unit value.
func (w WalletInfo) Coins() (decimal.Decimal, error) {
	if w.Balance != "" {
		units, err := decimal.NewFromString(w.Balance)
		if err != nil {
			return decimal.Zero, err
		}
		return FromBaseUnits(units), nil
	}
	return decimal.NewFromString(w.BalanceInTON)
}

type CollectionInfo struct {
	CollectionAddress string `json:"collectionAddress"`
	NextItemIndex     string `json:"nextItemIndex"`
	TotalMinted       string `json:"totalMinted"`
	Owner             string `json:"owner"`
	Explorer          string `json:"explorer"`
}

// ChainErrorBody is the error shape returned by the chain service.
type ChainErrorBody struct {
	Error          string `json:"error"`
	Message        string `json:"message,omitempty"`
	Address        string `json:"address,omitempty"`
	CurrentBalance string `json:"currentBalance,omitempty"` // "0.1000 TON"
}
