package static

import (
	"context"

	"alpha-listings/internal/model"
)

// Source serves the built-in sample catalog.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

func (s *Source) Source() string {
	return "static"
}

func (s *Source) Load(ctx context.Context) ([]model.Item, error) {
	return SampleItems(), nil
}

// SampleItems returns a fresh copy of the nine sample listings.
func SampleItems() []model.Item {
	return []model.Item{
		model.NewItem(1, "DeFi Yield Farming Protocol",
			"Build a comprehensive yield farming platform with multiple pool strategies and automated compounding features.",
			"$15,000 - $25,000", "3-4 months", model.CategoryDeFi,
			[]string{"Solidity", "React", "Web3.js", "Node.js"}, "2 days ago", 12),
		model.NewItem(2, "NFT Marketplace Development",
			"Create a modern NFT marketplace with advanced filtering, bidding system, and creator royalties.",
			"$20,000 - $35,000", "4-6 months", model.CategoryNFT,
			[]string{"Solidity", "React", "IPFS", "OpenSea API"}, "1 day ago", 8),
		model.NewItem(3, "DAO Governance Platform",
			"Develop a decentralized governance platform with proposal creation, voting mechanisms, and treasury management.",
			"$25,000 - $40,000", "5-7 months", model.CategoryDAO,
			[]string{"Solidity", "Vue.js", "Aragon", "Snapshot"}, "3 days ago", 15),
		model.NewItem(4, "Web3 Gaming Integration",
			"Integrate blockchain features into existing game including NFT items, token rewards, and marketplace.",
			"$10,000 - $18,000", "2-3 months", model.CategoryGaming,
			[]string{"Unity", "C#", "Solidity", "Moralis"}, "5 days ago", 6),
		model.NewItem(5, "Cross-Chain Bridge Protocol",
			"Build a secure cross-chain bridge for transferring assets between Ethereum and Polygon networks.",
			"$30,000 - $50,000", "6-8 months", model.CategoryInfrastructure,
			[]string{"Solidity", "Go", "Chainlink", "Security Auditing"}, "1 week ago", 20),
		model.NewItem(6, "Decentralized Exchange (DEX)",
			"Create a high-performance DEX with automated market making, liquidity pools, and advanced trading features.",
			"$40,000 - $60,000", "8-10 months", model.CategoryDeFi,
			[]string{"Solidity", "React", "The Graph", "Uniswap V3"}, "1 week ago", 25),
		model.NewItem(7, "AI-Powered NFT Generator",
			"Build an AI-driven platform for generating unique NFT artwork with customizable traits and rarity systems.",
			"$12,000 - $20,000", "3-4 months", model.CategoryNFT,
			[]string{"Python", "TensorFlow", "Solidity", "React"}, "3 days ago", 18),
		model.NewItem(8, "Multi-Chain Wallet Integration",
			"Develop a comprehensive wallet solution supporting multiple blockchains with seamless asset management.",
			"$25,000 - $35,000", "5-6 months", model.CategoryInfrastructure,
			[]string{"TypeScript", "Web3.js", "Ethers.js", "React Native"}, "2 days ago", 14),
		model.NewItem(9, "Play-to-Earn Game Economy",
			"Design and implement a sustainable tokenomics model for a blockchain-based gaming ecosystem.",
			"$18,000 - $28,000", "4-5 months", model.CategoryGaming,
			[]string{"Solidity", "Unity", "Game Design", "Economics"}, "4 days ago", 11),
	}
}
